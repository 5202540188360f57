package utils

import gonanoid "github.com/matoous/go-nanoid/v2"

// Apenas caracteres válidos em ids de elementos HTML e seletores CSS
const characters = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789"

const idLength = 8

// GenerateID gera o sufixo aleatório dos ids de elementos de cada montagem
func GenerateID() (string, error) {
	return gonanoid.Generate(characters, idLength)
}
