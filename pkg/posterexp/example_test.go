package posterexp_test

import (
	"fmt"

	"github.com/lwmacct/251014-go-pkg-poster/pkg/posterexp"
)

// Example_formatPrice 演示金额格式化。
func Example_formatPrice() {
	out := posterexp.Expand(`总价 {{formatPrice price}}`, posterexp.Record{"price": 12345})
	fmt.Println(out)

	// Output:
	// 总价 12,345万
}

// Example_conditionals 演示条件块与比较块。
func Example_conditionals() {
	template := `{{#if hasParking}}含车位 {{parkingPrice}}万{{/if}}` +
		`{{#ifCond taxFree '==' 'true'}} / 免税{{/ifCond}}`

	fmt.Println(posterexp.Expand(template, posterexp.Record{
		"hasParking":   true,
		"parkingPrice": 25,
		"taxFree":      "true",
	}))
	fmt.Printf("%q\n", posterexp.Expand(template, posterexp.Record{"taxFree": "false"}))

	// Output:
	// 含车位 25万 / 免税
	// ""
}

// Example_unknownVariable 演示未知变量保留原样。
func Example_unknownVariable() {
	fmt.Println(posterexp.Expand(`{{area}}㎡ {{unknown}}`, posterexp.Record{"area": 89}))

	// Output:
	// 89㎡ {{unknown}}
}
