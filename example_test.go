package lattice_test

import (
	"fmt"

	"honnef.co/go/lattice"
)

func ExampleIntersects() {
	room := lattice.NewBox(lattice.Pt(0, 0, 0), lattice.Pt(10, 10, 3))
	lamp := lattice.NewSphere(lattice.Pt(12, 5, 1), 2)
	cable := lattice.NewSegment(lattice.Pt(-5, 5, 0), lattice.Pt(3, 5, 0))

	fmt.Println(lattice.Intersects(&room, lamp))
	fmt.Println(lattice.Intersects(cable, lamp))
	fmt.Println(room.Intersects(cable))
	// Output:
	// true
	// false
	// true
}

func ExamplePath_Contains() {
	p := lattice.NewPath(lattice.NonZero)
	p.MoveTo(lattice.Pt(0, 0, 0))
	p.LineTo(lattice.Pt(10, 0, 0))
	p.LineTo(lattice.Pt(10, 10, 0))
	p.LineTo(lattice.Pt(0, 10, 0))
	p.ClosePath()

	fmt.Println(p.Contains(lattice.Pt(5, 5, 0)))
	fmt.Println(p.Contains(lattice.Pt(10, 5, 0)))
	fmt.Println(p.Contains(lattice.Pt(15, 5, 0)))
	// Output:
	// true
	// true
	// false
}

func ExampleLinePoints() {
	for pt := range lattice.LinePoints(lattice.Pt(0, 0, 0), lattice.Pt(4, 2, 1)) {
		fmt.Println(pt)
	}
	// Output:
	// (0, 0, 0)
	// (1, 0, 0)
	// (2, 1, 0)
	// (3, 1, 1)
	// (4, 2, 1)
}

func ExampleFlatteningIterator() {
	p := lattice.NewPath(lattice.NonZero)
	p.MoveTo(lattice.Pt(0, 0, 0))
	p.QuadTo(lattice.Pt(50, 100, 0), lattice.Pt(100, 0, 0))

	it := lattice.FlatteningIterator(p.PathIterator(), lattice.WithLimit(2))
	for el := range lattice.Elements(it) {
		fmt.Println(el)
	}
	// Output:
	// MoveTo((0, 0, 0))
	// LineTo((0, 0, 0), (25, 38, 0))
	// LineTo((25, 38, 0), (50, 50, 0))
	// LineTo((50, 50, 0), (75, 38, 0))
	// LineTo((75, 38, 0), (100, 0, 0))
}
