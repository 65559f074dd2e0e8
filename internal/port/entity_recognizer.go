package port

// EntityLabelOrganization tags organization entities.
const EntityLabelOrganization = "ORG"

// Entity is a labelled span of the recognized text. Start and End are byte offsets.
type Entity struct {
	Text  string
	Label string
	Start int
	End   int
}

// EntityRecognizer finds named entities in free text. Implementations must be
// safe for concurrent use.
type EntityRecognizer interface {
	Recognize(text string) []Entity
}
