package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math/rand"
	"net/http"
	"os"
	"sync"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
)

const (
	workers  = 10
	duration = 30 * time.Second
)

var (
	apiURL = getEnv("API_URL", "http://localhost:8080")
	apiKey = getEnv("API_KEY", "user1_key")
	client = &http.Client{Timeout: 5 * time.Second}
)

type transaction struct {
	Amount string `json:"amount"`
}

type balanceResponse struct {
	User     string `json:"user"`
	Balance  string `json:"balance"`
	Currency string `json:"currency"`
}

// Hammers one account with random deposits and withdrawals and reports how
// many were accepted. The final balance must never be negative.
func main() {
	var accepted, rejected, failed int64
	var wg sync.WaitGroup
	wg.Add(workers)

	for i := 0; i < workers; i++ {
		go func() {
			defer wg.Done()
			start := time.Now()
			for time.Since(start) < duration {
				status, err := sendTransaction()
				switch {
				case err != nil:
					atomic.AddInt64(&failed, 1)
					fmt.Println("Error sending transaction:", err)
				case status == http.StatusOK:
					atomic.AddInt64(&accepted, 1)
				default:
					atomic.AddInt64(&rejected, 1)
				}
				time.Sleep(time.Duration(rand.Intn(100)) * time.Millisecond)
			}
		}()
	}

	stop := make(chan struct{})
	go func() {
		ticker := time.NewTicker(5 * time.Second)
		defer ticker.Stop()
		for {
			select {
			case <-stop:
				return
			case <-ticker.C:
				printBalance()
			}
		}
	}()

	wg.Wait()
	close(stop)

	fmt.Printf("accepted=%d rejected=%d failed=%d\n", accepted, rejected, failed)
	printBalance()
}

func sendTransaction() (int, error) {
	path := "/deposit"
	if rand.Float64() < 0.5 {
		path = "/withdraw"
	}

	data, err := json.Marshal(transaction{Amount: fmt.Sprintf("%d.%02d", rand.Intn(1000)+1, rand.Intn(100))})
	if err != nil {
		return 0, err
	}

	req, err := http.NewRequest(http.MethodPost, apiURL+path, bytes.NewBuffer(data))
	if err != nil {
		return 0, err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-API-Key", apiKey)
	req.Header.Set("X-Request-Id", uuid.NewString())

	resp, err := client.Do(req)
	if err != nil {
		return 0, err
	}
	resp.Body.Close()

	return resp.StatusCode, nil
}

func printBalance() {
	req, err := http.NewRequest(http.MethodGet, apiURL+"/balance", nil)
	if err != nil {
		fmt.Println("Error building balance request:", err)
		return
	}
	req.Header.Set("X-API-Key", apiKey)

	resp, err := client.Do(req)
	if err != nil {
		fmt.Println("Error getting balance:", err)
		return
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		fmt.Println("Wrong status code:", resp.StatusCode)
		return
	}

	var b balanceResponse
	if err = json.NewDecoder(resp.Body).Decode(&b); err != nil {
		fmt.Println("Error decoding balance:", err)
		return
	}

	fmt.Printf("%s balance: %s %s\n", b.User, b.Balance, b.Currency)
}

func getEnv(key, defaultValue string) string {
	if v, ok := os.LookupEnv(key); ok {
		return v
	}
	return defaultValue
}
