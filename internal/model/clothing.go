package model

import "time"

type ClothingColor string

const (
	ColorPink   ClothingColor = "pink"
	ColorBlack  ClothingColor = "black"
	ColorWhite  ClothingColor = "white"
	ColorYellow ClothingColor = "yellow"
)

type ClothingSize string

const (
	SizeXS  ClothingSize = "xs"
	SizeS   ClothingSize = "s"
	SizeM   ClothingSize = "m"
	SizeL   ClothingSize = "l"
	SizeXL  ClothingSize = "xl"
	SizeXXL ClothingSize = "xxl"
)

type ClothingItem struct {
	ID             int64         `json:"id"`
	Name           string        `json:"name"`
	Color          ClothingColor `json:"color"`
	Size           ClothingSize  `json:"size"`
	PhotoURL       *string       `json:"photo_url,omitempty"`
	CreatedAt      time.Time     `json:"created_at"`
	LastModifiedAt time.Time     `json:"last_modified_at"`
}
