package layermask_test

import (
	"fmt"

	"github.com/wastore/layermask"
)

func ExampleNew() {
	ground, err := layermask.New(1, 2)
	if err != nil {
		panic(err)
	}

	fmt.Println(ground)
	fmt.Println(ground.LayerCount())
	// Output:
	// 0x00000006
	// 2
}

func ExampleMask_Has() {
	m := layermask.MustNew(1, 2, 3)

	fmt.Println(m.Has().All(1, 2))
	fmt.Println(m.Has().Any(4, 5))
	fmt.Println(m.Has().Only(1, 2, 3))
	// Output:
	// true
	// false
	// true
}

func ExampleMask_Is() {
	fmt.Println(layermask.MustNew(5).Is().Exactly(5))
	fmt.Println(layermask.MustNew(5).Is().Any(5, 7))

	// A two-layer mask equals neither single candidate on its own.
	fmt.Println(layermask.MustNew(5, 6).Is().Any(5, 7))
	// Output:
	// true
	// true
	// false
}

func ExampleMask_Subtract() {
	visible := layermask.AllLayers.Subtract(4, 9)

	fmt.Println(visible.Contains(4))
	fmt.Println(visible.LayerCount())
	// Output:
	// false
	// 30
}

func ExampleMask_EnumerateLayers() {
	m := layermask.MustNew(3, 1, 2)

	m.EnumerateLayers(func(l layermask.Layer) bool {
		fmt.Println(l)
		return false
	})
	// Output:
	// 1
	// 2
	// 3
}

func ExampleNameTable() {
	table := layermask.NewNameTable()
	if err := table.SetName(layermask.MustLayer(4), "Water"); err != nil {
		panic(err)
	}

	name, _ := table.Name(layermask.MustLayer(4))
	fmt.Println(name)

	_, err := table.Name(layermask.MustLayer(9))
	fmt.Println(err)
	// Output:
	// Water
	// no display name registered for layer 9
}
