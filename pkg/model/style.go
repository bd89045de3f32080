package model

// Style holds the defining numeric ranges of a beer style. Name is the key used to
// find, merge and delete a persisted style; no ordering is enforced between the low
// and high bound of a range.
type Style struct {
	Name                string  `json:"name"                yaml:"name"                validate:"required,max=128,nocontrol"`
	ABVLow              float64 `json:"abvLow"              yaml:"abvLow"`
	ABVHigh             float64 `json:"abvHigh"             yaml:"abvHigh"`
	IBULow              int64   `json:"ibuLow"              yaml:"ibuLow"`
	IBUHigh             int64   `json:"ibuHigh"             yaml:"ibuHigh"`
	SRMLow              float64 `json:"srmLow"              yaml:"srmLow"`
	SRMHigh             float64 `json:"srmHigh"             yaml:"srmHigh"`
	OriginalGravityLow  float64 `json:"originalGravityLow"  yaml:"originalGravityLow"`
	OriginalGravityHigh float64 `json:"originalGravityHigh" yaml:"originalGravityHigh"`
	FinalGravityLow     float64 `json:"finalGravityLow"     yaml:"finalGravityLow"`
	FinalGravityHigh    float64 `json:"finalGravityHigh"    yaml:"finalGravityHigh"`
}

// Equal compares every field exactly, floats included.
func (s Style) Equal(other Style) bool {
	return s == other
}
