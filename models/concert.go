// models/concert.go
package models

// ConcertType is the brigade/lineup code attached to a concert record.
type ConcertType string

const (
	ConcertTypeGeneral           ConcertType = "general"
	ConcertTypeBrigade1          ConcertType = "brigade-1"
	ConcertTypeBrigade2          ConcertType = "brigade-2"
	ConcertTypeBrigadeEnhanced   ConcertType = "brigade-enhanced"
	ConcertTypeSoloistsOrchestra ConcertType = "soloists-orchestra"
	ConcertTypeUnknown           ConcertType = "unknown"
)

// ConcertProgram is the planned set list for a concert.
type ConcertProgram struct {
	Songs []string `bson:"songs" json:"songs"`
}

// Concert is a concert/event record. Most fields are optional; rendering
// degrades to placeholders when they are absent.
type Concert struct {
	ID            string         `bson:"id" json:"id"`
	Date          string         `bson:"date,omitempty" json:"date,omitempty"`           // "2006-01-02"
	StartTime     string         `bson:"startTime,omitempty" json:"startTime,omitempty"` // "HH:MM"
	DepartureTime string         `bson:"departureTime,omitempty" json:"departureTime,omitempty"`
	Description   string         `bson:"description,omitempty" json:"description,omitempty"`
	Address       string         `bson:"address,omitempty" json:"address,omitempty"`
	ConcertType   ConcertType    `bson:"concertType,omitempty" json:"concertType,omitempty"`
	Participants  []string       `bson:"participants,omitempty" json:"participants,omitempty"`
	Program       ConcertProgram `bson:"program,omitempty" json:"program,omitempty"`
}

// ConcertTypeOption is a picker entry for a concert type.
type ConcertTypeOption struct {
	Label string `json:"label"`
	Color string `json:"color"`
}

// ConcertTypeOptions maps each concert type code to its display label and
// color. Codes outside this table resolve to the unknown variant, never to a
// silent fallthrough.
var ConcertTypeOptions = map[ConcertType]ConcertTypeOption{
	ConcertTypeGeneral:           {Label: "Общий концерт", Color: "#607D8B"},
	ConcertTypeBrigade1:          {Label: "1 бригада", Color: "#1E88E5"},
	ConcertTypeBrigade2:          {Label: "2 бригада", Color: "#43A047"},
	ConcertTypeBrigadeEnhanced:   {Label: "Усиленная бригада", Color: "#F4511E"},
	ConcertTypeSoloistsOrchestra: {Label: "Солисты и оркестр", Color: "#8E24AA"},
	ConcertTypeUnknown:           {Label: "Неизвестный тип", Color: "#9E9E9E"},
}

// ResolveConcertType maps a raw type code onto a known concert type, falling
// back to the explicit unknown variant.
func ResolveConcertType(code ConcertType) ConcertType {
	if _, ok := ConcertTypeOptions[code]; ok {
		return code
	}
	return ConcertTypeUnknown
}

// ConcertTypeLabel returns the display label for a raw type code.
func ConcertTypeLabel(code ConcertType) string {
	return ConcertTypeOptions[ResolveConcertType(code)].Label
}
