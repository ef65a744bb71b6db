// SPDX-License-Identifier: MIT

package phonefwd_test

import (
	"fmt"

	"github.com/adamgreloch/phonefwd"
)

func ExamplePhoneForward_Get() {
	pf := phonefwd.New()
	defer pf.Close()

	pf.Add("123", "9")
	pf.Add("123456", "777777")

	for _, num := range []string{"1234", "123456", "997"} {
		pn := pf.Get(num)
		rewritten, _ := pn.Get(0)
		fmt.Println(rewritten)
	}

	// Output:
	// 94
	// 777777
	// 997
}

func ExamplePhoneForward_Reverse() {
	pf := phonefwd.New()
	defer pf.Close()

	pf.Add("123", "9")

	pn := pf.Reverse("9")
	for i := 0; i < pn.Len(); i++ {
		s, _ := pn.Get(i)
		fmt.Println(s)
	}

	// Output:
	// 123
	// 9
}

func ExamplePhoneForward_Remove() {
	pf := phonefwd.New()
	defer pf.Close()

	pf.Add("123", "9")
	pf.Add("123456", "777777")
	fmt.Println(pf.Len())

	pf.Remove("123")
	fmt.Println(pf.Len())

	pn := pf.Get("123456")
	rewritten, _ := pn.Get(0)
	fmt.Println(rewritten)

	// Output:
	// 2
	// 0
	// 123456
}
