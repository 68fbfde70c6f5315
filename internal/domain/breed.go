package domain

type Breed struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	SizeClass string `json:"size_class,omitempty"`
}
