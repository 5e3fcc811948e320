package entity

// Person datos básicos de una persona (nombre y dirección).
// La validación de los campos es responsabilidad de la capa de entrada.
type Person struct {
	Name    string
	Address string
}

// NewPerson construye una Person.
func NewPerson(name, address string) Person {
	return Person{Name: name, Address: address}
}
