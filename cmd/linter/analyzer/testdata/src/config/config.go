package config

import "os"

func APIKey() string {
	return os.Getenv("TAVUS_API_KEY")
}

func Persona() (string, bool) {
	return os.LookupEnv("PERSONA_ID")
}
