package chainutil_test

import (
	"fmt"
	"math"

	"github.com/talusnet/talusd/chainutil"
)

func ExampleAmount() {

	a := chainutil.Amount(0)
	fmt.Println("Zero Satoshi:", a)

	a = chainutil.Amount(1e8)
	fmt.Println("100,000,000 Satoshis:", a)

	a = chainutil.Amount(1e5)
	fmt.Println("100,000 Satoshis:", a)
	// Output:
	// Zero Satoshi: 0 TAL
	// 100,000,000 Satoshis: 1 TAL
	// 100,000 Satoshis: 0.00100000 TAL
}

func ExampleNewAmount() {
	amountOne, err := chainutil.NewAmount(1)
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Println(amountOne) //Output 1

	amountFraction, err := chainutil.NewAmount(0.01234567)
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Println(amountFraction) //Output 2

	amountZero, err := chainutil.NewAmount(0)
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Println(amountZero) //Output 3

	amountNaN, err := chainutil.NewAmount(math.NaN())
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Println(amountNaN) //Output 4

	// Output: 1 TAL
	// 0.01234567 TAL
	// 0 TAL
	// invalid talus amount
}

func ExampleAmount_unitConversions() {
	amount := chainutil.Amount(44433322211100)

	fmt.Println("Satoshi to kTAL:", amount.Format(chainutil.AmountKiloTAL))
	fmt.Println("Satoshi to TAL:", amount)
	fmt.Println("Satoshi to MilliTAL:", amount.Format(chainutil.AmountMilliTAL))
	fmt.Println("Satoshi to MicroTAL:", amount.Format(chainutil.AmountMicroTAL))
	fmt.Println("Satoshi to Satoshi:", amount.Format(chainutil.AmountSatoshi))

	// Output:
	// Satoshi to kTAL: 444.333222111 kTAL
	// Satoshi to TAL: 444333.22211100 TAL
	// Satoshi to MilliTAL: 444333222.111 mTAL
	// Satoshi to MicroTAL: 444333222111 µTAL
	// Satoshi to Satoshi: 44433322211100 Satoshi
}
