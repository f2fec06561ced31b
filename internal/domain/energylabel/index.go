// Package energylabel holds the read-only energy label facts keyed by
// zipcode, house number and extension.
package energylabel

type Label string

const (
	LabelA Label = "A"
	LabelB Label = "B"
	LabelC Label = "C"
	LabelD Label = "D"
	LabelE Label = "E"
	LabelF Label = "F"
	LabelG Label = "G"

	// NoLabel is returned for every lookup miss.
	NoLabel Label = "No registered label"
)

var Labels = []Label{LabelA, LabelB, LabelC, LabelD, LabelE, LabelF, LabelG, NoLabel}

// Fact is one registered label. An empty Extension means the address has
// no extension.
type Fact struct {
	Zipcode     string
	HouseNumber int
	Extension   string
	Label       Label
}

// SeedFacts is the data every fresh index is built from.
var SeedFacts = []Fact{
	{Zipcode: "1111AA", HouseNumber: 10, Extension: "", Label: LabelA},
	{Zipcode: "1111AA", HouseNumber: 10, Extension: "C", Label: LabelC},
}

// Index is immutable once built and safe for concurrent reads.
type Index struct {
	labels map[string]map[int]map[string]Label
}

func NewIndex(facts []Fact) *Index {
	labels := map[string]map[int]map[string]Label{}
	for _, fact := range facts {
		byNumber, ok := labels[fact.Zipcode]
		if !ok {
			byNumber = map[int]map[string]Label{}
			labels[fact.Zipcode] = byNumber
		}
		byExtension, ok := byNumber[fact.HouseNumber]
		if !ok {
			byExtension = map[string]Label{}
			byNumber[fact.HouseNumber] = byExtension
		}
		byExtension[fact.Extension] = fact.Label
	}
	return &Index{labels: labels}
}

func Default() *Index {
	return NewIndex(SeedFacts)
}

// Lookup never fails: a miss at any of the three levels yields NoLabel.
// A nil extension is looked up as "".
func (i *Index) Lookup(zipcode string, houseNumber int, extension *string) Label {
	ext := ""
	if extension != nil {
		ext = *extension
	}
	byNumber, ok := i.labels[zipcode]
	if !ok {
		return NoLabel
	}
	byExtension, ok := byNumber[houseNumber]
	if !ok {
		return NoLabel
	}
	label, ok := byExtension[ext]
	if !ok {
		return NoLabel
	}
	return label
}
