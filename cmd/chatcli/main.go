// Package main provides a terminal client for a running census-chat server.
package main

import (
	"bufio"
	"bytes"
	"encoding/json"
	"flag"
	"fmt"
	"net/http"
	"net/http/cookiejar"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/fatih/color"
)

var (
	serverURL = flag.String("server", "http://localhost:8080", "census-chat server URL")
	timeout   = flag.Duration("timeout", 5*time.Minute, "per-request timeout")
)

type stepPayload struct {
	Type    string          `json:"type"`
	Content json.RawMessage `json:"content"`
}

type chatResponse struct {
	Steps []stepPayload `json:"steps"`
	Error string        `json:"error"`
}

type queryResult struct {
	Columns []string         `json:"columns"`
	Rows    []map[string]any `json:"rows"`
}

func main() {
	flag.Parse()

	// The cookie jar keeps the sid cookie so the server sees one session
	// across requests.
	jar, err := cookiejar.New(nil)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	client := &http.Client{Jar: jar, Timeout: *timeout}

	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-c
		fmt.Println("\nBye.")
		os.Exit(0)
	}()

	boldGreen := color.New(color.FgGreen, color.Bold).SprintFunc()
	boldCyan := color.New(color.FgCyan, color.Bold).SprintFunc()
	yellow := color.New(color.FgYellow).SprintFunc()
	red := color.New(color.FgRed).SprintFunc()

	fmt.Println(boldGreen("Census Chat"))
	fmt.Printf("Connected to %s\n", boldCyan(*serverURL))
	fmt.Println("Ask about US Census data. Type 'reset' to start over, 'exit' to quit.")
	fmt.Println()

	scanner := bufio.NewScanner(os.Stdin)
	for {
		fmt.Print(boldGreen("You: "))
		if !scanner.Scan() {
			break
		}
		input := strings.TrimSpace(scanner.Text())

		switch strings.ToLower(input) {
		case "":
			continue
		case "exit", "quit":
			return
		case "reset":
			if _, err := client.Post(*serverURL+"/reset", "application/json", nil); err != nil {
				fmt.Fprintf(os.Stderr, "%s %v\n", red("Error:"), err)
				continue
			}
			fmt.Println(yellow("Conversation cleared."))
			continue
		}

		resp, err := sendMessage(client, input)
		if err != nil {
			fmt.Fprintf(os.Stderr, "%s %v\n", red("Error:"), err)
			continue
		}
		if resp.Error != "" {
			fmt.Fprintf(os.Stderr, "%s %s\n", red("Error:"), resp.Error)
			continue
		}

		for _, step := range resp.Steps {
			renderStep(step, boldCyan, yellow, red)
		}
		fmt.Println()
	}
}

func sendMessage(client *http.Client, message string) (*chatResponse, error) {
	body, err := json.Marshal(map[string]string{"message": message})
	if err != nil {
		return nil, err
	}

	resp, err := client.Post(*serverURL+"/chat", "application/json", bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	var out chatResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return nil, fmt.Errorf("decode response: %w", err)
	}
	return &out, nil
}

func renderStep(step stepPayload, boldCyan, yellow, red func(...interface{}) string) {
	switch step.Type {
	case "answer":
		fmt.Printf("%s %s\n", boldCyan("Assistant:"), asText(step.Content))
	case "llm_response":
		fmt.Printf("%s %s\n", yellow("Working:"), asText(step.Content))
	case "query_result":
		var result queryResult
		if err := json.Unmarshal(step.Content, &result); err != nil {
			fmt.Printf("%s %s\n", yellow("Result:"), string(step.Content))
			return
		}
		printResult(&result, yellow)
	case "query_error":
		fmt.Printf("%s %s\n", red("Query error:"), asText(step.Content))
	case "error":
		fmt.Printf("%s %s\n", red("Error:"), asText(step.Content))
	}
}

func asText(raw json.RawMessage) string {
	var s string
	if err := json.Unmarshal(raw, &s); err != nil {
		return string(raw)
	}
	return s
}

func printResult(result *queryResult, yellow func(...interface{}) string) {
	fmt.Printf("%s %d row(s)\n", yellow("Result:"), len(result.Rows))
	if len(result.Rows) == 0 {
		return
	}

	fmt.Println("  " + strings.Join(result.Columns, " | "))
	limit := len(result.Rows)
	if limit > 20 {
		limit = 20
	}
	for _, row := range result.Rows[:limit] {
		cells := make([]string, len(result.Columns))
		for i, col := range result.Columns {
			cells[i] = fmt.Sprintf("%v", row[col])
		}
		fmt.Println("  " + strings.Join(cells, " | "))
	}
	if len(result.Rows) > limit {
		fmt.Printf("  ... %d more row(s)\n", len(result.Rows)-limit)
	}
}
