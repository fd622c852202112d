package matrix

import (
	"strconv"

	"github.com/beevik/etree"
)

// UpperDiagonalXML returns an element named elementName holding one <value>
// child per entry of UpperDiagonal(feature, logged), in the same order.
func (m *Matrix) UpperDiagonalXML(feature, elementName string, logged bool) (*etree.Element, error) {
	diag, err := m.UpperDiagonal(feature, logged)
	if err != nil {
		return nil, err
	}
	el := etree.NewElement(elementName)
	for _, v := range diag {
		el.CreateElement("value").SetText(formatValue(v))
	}
	return el, nil
}

// AllFeaturesXML returns an element named elementName holding, for each
// feature in declaration order, a comment carrying the feature's name
// followed by a <feature> element with that feature's upper-diagonal values.
// The caller owns document-level concerns (declaration, indentation).
func (m *Matrix) AllFeaturesXML(elementName string, logged bool) *etree.Element {
	root := etree.NewElement(elementName)
	for _, name := range m.featureNames {
		root.CreateComment(name)
		// name comes from the matrix itself, so the lookup cannot fail.
		el, _ := m.UpperDiagonalXML(name, "feature", logged)
		root.AddChild(el)
	}
	return root
}

func formatValue(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}
