package pipeline_test

import (
	"errors"
	"fmt"
	"log"

	"github.com/hasbyte1/go-classic-ciphers/cipher"
	"github.com/hasbyte1/go-classic-ciphers/pipeline"
)

// Example_basicUsage builds a pipeline, encrypts and decrypts.
func Example_basicUsage() {
	p, err := pipeline.New([]pipeline.Stage{
		{Name: pipeline.Vigenere, Key: "LEMON", Enabled: true},
		{Name: pipeline.Transposition, Key: "3", Enabled: true},
		{Name: pipeline.Reverse, Enabled: true},
	})
	if err != nil {
		log.Fatal(err)
	}

	enc := p.Encrypt("Attack at dawn!")
	fmt.Println(p.Decrypt(enc))
	fmt.Println(p.Stages())
	// Output:
	// Attack at dawn!
	// [vigenere transposition reverse]
}

// Example_functions uses the one-shot helpers.
func Example_functions() {
	stages := []pipeline.Stage{
		{Name: pipeline.Caesar, Key: "3", Enabled: true},
		{Name: pipeline.Reverse, Enabled: true},
	}
	enc, _ := pipeline.Encrypt("HELLO", stages)
	dec, _ := pipeline.Decrypt(enc, stages)
	fmt.Println(enc, dec)
	// Output: ROOHK HELLO
}

// Example_configurationError shows a key error surfacing through the
// pipeline with the stage name attached.
func Example_configurationError() {
	_, err := pipeline.New([]pipeline.Stage{
		{Name: pipeline.Substitution, Key: "ABC", Enabled: true},
	})
	fmt.Println(errors.Is(err, cipher.ErrConfiguration))
	// Output: true
}

// Example_parseSpec loads stages from YAML.
func Example_parseSpec() {
	spec, err := pipeline.ParseSpec([]byte(`
stages:
  - name: caesar
    key: "3"
  - name: reverse
`))
	if err != nil {
		log.Fatal(err)
	}
	enc, _ := pipeline.Encrypt("HELLO", spec.Stages)
	fmt.Println(enc)
	// Output: ROOHK
}
