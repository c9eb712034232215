package models

import "gorm.io/datatypes"

type RoomType string

const (
	RoomTypeSuite   RoomType = "Suite"
	RoomTypeDeluxe  RoomType = "Deluxe"
	RoomTypeLuxury  RoomType = "Luxury"
	RoomTypeRegular RoomType = "Regular"
)

type BedType string

const (
	BedTypeKing   BedType = "King"
	BedTypeQueen  BedType = "Queen"
	BedTypeDouble BedType = "Double"
)

// Room describes a category of rooms sharing a rate and layout.
type Room struct {
	BaseModel
	Type          RoomType       `gorm:"type:text;uniqueIndex;not null" json:"type"`
	PricePerNight int            `gorm:"type:int;not null"              json:"pricePerNight"`
	Bed           BedType        `gorm:"type:text"                      json:"bed"`
	Capacity      int            `gorm:"type:int"                       json:"capacity"`
	Amenities     datatypes.JSON `gorm:"type:jsonb"                     json:"amenities,omitempty"`
}

type ViewType string

const (
	ViewTypeMountain ViewType = "Mountain"
	ViewTypeForest   ViewType = "Forest"
	ViewTypeNone     ViewType = "None"
)

// SpecificRoom is a physical room, keyed by its door number.
type SpecificRoom struct {
	Number      int      `gorm:"type:int;primaryKey"  json:"number"`
	Floor       int      `gorm:"type:int"             json:"floor"`
	View        ViewType `gorm:"type:text"            json:"view"`
	Description string   `gorm:"type:text"            json:"description"`
	OpenForUse  bool     `gorm:"type:bool;default:true" json:"openForUse"`
	RoomID      int      `gorm:"type:int;index;not null" json:"roomId"`
	Room        *Room    `gorm:"foreignKey:RoomID"    json:"room,omitempty"`
}
