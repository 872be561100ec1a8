package main

import (
	"fmt"

	ksuid "github.com/complex-gh/ksuid_go"
	"github.com/complex-gh/ksuid_go/entropy"
)

func main() {
	// Create a new KSUID with the default generator
	id, err := ksuid.New()
	if err != nil {
		panic(err)
	}
	fmt.Printf("Generated KSUID:\n%s\n\n", id)

	// Parse it back
	parsed, err := ksuid.Parse(id.String())
	if err != nil {
		fmt.Printf("Error decoding: %v\n", err)
		return
	}

	fmt.Printf("Successfully decoded KSUID!\n")
	fmt.Printf("Time: %s\n", parsed.Time())
	fmt.Printf("Timestamp: %d\n", parsed.Timestamp())
	fmt.Printf("Payload: %s\n\n", parsed.Payload())

	// Use a different payload source
	src, err := entropy.New("chacha20")
	if err != nil {
		panic(err)
	}
	g := ksuid.NewGenerator(ksuid.WithSource(src))
	ids := make([]ksuid.KSUID, 3)
	for i := range ids {
		ids[i] = ksuid.Must(g.NewWithTimestamp(uint32(3 - i)))
	}
	ksuid.Sort(ids)
	for _, id := range ids {
		fmt.Println(id)
	}
}
