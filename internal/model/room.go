package model

// Room describes an auditorium. Type distinguishes standard rooms from
// VIP rooms, which restrict bookable rows.
type Room struct {
	ID       uint64 `json:"id"`
	Name     string `json:"name"`
	Capacity int    `json:"capacity"`
	Type     string `json:"type"`
}
