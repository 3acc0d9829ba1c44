package forbiddencalls

import (
	"log"
	"os"
)

func SomePanicFunction() {
	panic("this is forbidden") // want "panic is forbidden"
}

func SomeLogFatalFunction() {
	log.Fatal("this is forbidden") // want "log.Fatal is forbidden outside main function"
}

func SomeOsExitFunction() {
	os.Exit(1) // want "os.Exit is forbidden outside main function"
}

func ReadAPIKey() string {
	return os.Getenv("TAVUS_API_KEY") // want "os.Getenv is forbidden outside the config package"
}

func LookupPersona() (string, bool) {
	return os.LookupEnv("PERSONA_ID") // want "os.LookupEnv is forbidden outside the config package"
}

func MultipleCallsFunction() {
	panic("panic 1")   // want "panic is forbidden"
	log.Fatal("fatal") // want "log.Fatal is forbidden outside main function"
	os.Exit(0)         // want "os.Exit is forbidden outside main function"
}
