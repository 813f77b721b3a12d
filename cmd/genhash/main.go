// cmd/genhash prints the pin_hash value stored for a PIN.
// Usage: go run ./cmd/genhash 1234
package main

import (
	"fmt"
	"os"

	"litepos/internal/service"
)

func main() {
	pin := "1234"
	if len(os.Args) > 1 {
		pin = os.Args[1]
	}
	fmt.Println(service.HashPIN(pin))
}
