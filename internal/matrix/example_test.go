package matrix_test

import (
	"fmt"
	"strings"

	"github.com/beevik/etree"

	"github.com/taxatools/taxadist/internal/matrix"
)

func ExampleMatrix_UpperDiagonal() {
	m, err := matrix.New(strings.NewReader("name, A, B\nt1, 3, 4\nt2, 5, 6\n"))
	if err != nil {
		panic(err)
	}
	diag, _ := m.UpperDiagonal("A", false)
	fmt.Println(diag)
	// Output: [-2]
}

func ExampleMatrix_AllFeaturesXML() {
	m, err := matrix.New(strings.NewReader("name, A, B\nt1, 1, 10\nt2, 3, 10\n"))
	if err != nil {
		panic(err)
	}
	doc := etree.NewDocument()
	doc.SetRoot(m.AllFeaturesXML("xxx", false))
	s, _ := doc.WriteToString()
	fmt.Println(s)
	// Output: <xxx><!--A--><feature><value>-2</value></feature><!--B--><feature><value>0</value></feature></xxx>
}
