package demo

// A Person is bound from the name and age request parameters.
type Person struct {
	Name string `json:"name" xml:"name" schema:"name" validate:"required"`
	Age  int    `json:"age" xml:"age" schema:"age"`
}
