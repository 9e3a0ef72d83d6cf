package model

type Tag struct {
	ID   int64
	Name string
}
