package affix_test

import (
	"fmt"

	"conjugal/affix"
)

func Example() {
	fmt.Println(affix.Prefix("fettle", "re", ""))
	fmt.Println(affix.Suffix("yolo", "swag", "#"))
	fmt.Println(affix.Circumfix("boob", "em", "en", ""))
	fmt.Println(affix.Ambifix("cold", "en", ""))
	fmt.Println(affix.Duplifix("boo", ""))

	word, err := affix.Infix("absolutely", "bloody", affix.At(4), "")
	if err != nil {
		fmt.Println(err)
		return
	}

	fmt.Println(word)
	// Output:
	// refettle
	// yolo#swag
	// embooben
	// encolden
	// booboo
	// absobloodylutely
}

func ExampleAffix_WithStem() {
	un := affix.NewPrefix("un", "")

	for _, stem := range []string{"do", "tie", ""} {
		fmt.Printf("%q\n", un.WithStem(stem).MustRender())
	}
	// Output:
	// "undo"
	// "untie"
	// ""
}

func ExampleAffixation_Render() {
	_, err := affix.Affixation{}.Render()
	fmt.Println(err)

	a, _ := affix.New(affix.FlavorInfix, "iz", "", "", affix.At(1))
	out, err := a.WithStem("house").Render()
	fmt.Println(out, err)

	_, err = a.WithStem("").Render()
	fmt.Println(err)
	// Output:
	// <nil>
	// hizouse <nil>
	// <nil>
}

func ExampleSplitCircumfix() {
	a, err := affix.SplitCircumfix("get", affix.At(2), "")
	if err != nil {
		fmt.Println(err)
		return
	}

	fmt.Println(a.WithStem("mach").MustRender())
	// Output: gemacht
}
