// mockcheckout posts a sample cart to a running session endpoint and prints
// the response. Handy for poking a local server without a browser.
package main

import (
	"bytes"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"net/http"
	"os"

	"github.com/google/uuid"
)

type item struct {
	ID       string  `json:"id"`
	Name     string  `json:"name"`
	Price    float64 `json:"price"`
	Quantity int     `json:"quantity"`
}

type payload struct {
	Items        []item            `json:"items"`
	CustomerInfo map[string]string `json:"customerInfo"`
}

func main() {
	url := flag.String("url", "http://localhost:8080/api/create-checkout-session", "Session endpoint URL")
	name := flag.String("name", "Burger", "Item name")
	price := flag.Float64("price", 10, "Item price in dollars")
	qty := flag.Int("qty", 2, "Item quantity")
	email := flag.String("email", "test@local.test", "Customer email")
	dryRun := flag.Bool("dry-run", false, "Only print the payload, don't send")

	flag.Parse()

	p := payload{
		Items: []item{
			{ID: uuid.NewString(), Name: *name, Price: *price, Quantity: *qty},
			{ID: uuid.NewString(), Name: "Fries", Price: 3, Quantity: 1},
		},
		CustomerInfo: map[string]string{
			"firstName":    "Test",
			"lastName":     "Customer",
			"addressLine1": "1 Sample St",
			"addressLine2": "",
			"city":         "Springfield",
			"zipcode":      "12345",
			"phone":        "555-0100",
			"email":        *email,
		},
	}

	body, err := json.MarshalIndent(p, "", "  ")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error marshaling payload: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Body: %s\n", string(body))

	if *dryRun {
		fmt.Println("\n[DRY RUN] Not sending request")
		return
	}

	fmt.Printf("\nSending to %s...\n", *url)
	resp, err := http.Post(*url, "application/json", bytes.NewReader(body))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error sending request: %v\n", err)
		os.Exit(1)
	}
	defer resp.Body.Close()

	respBody, _ := io.ReadAll(resp.Body)
	fmt.Printf("Status: %d\n", resp.StatusCode)
	fmt.Printf("Response: %s\n", string(respBody))

	if resp.StatusCode != http.StatusOK {
		os.Exit(1)
	}
}
