package utils

import gonanoid "github.com/matoous/go-nanoid/v2"

const characters = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789"

const idLength = 10

// GenerateID gera um identificador curto para escolas e banners
func GenerateID() (string, error) {
	return gonanoid.Generate(characters, idLength)
}
