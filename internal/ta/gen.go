package ta

//go:generate go run ./gen -out .
