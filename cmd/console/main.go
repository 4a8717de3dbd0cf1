package main

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	"github.com/vishalmourya/car-saarthi/apimodels"
	"github.com/vishalmourya/car-saarthi/internal/advisor"
	"github.com/vishalmourya/car-saarthi/internal/config"
	"github.com/vishalmourya/car-saarthi/internal/llm"
	"github.com/vishalmourya/car-saarthi/internal/render"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("failed to load configuration: %v", err)
	}

	chainLLM, lookupLLM, err := llm.NewFromConfig(context.Background(), cfg)
	if err != nil {
		log.Fatalf("failed to create LLM provider: %v", err)
	}
	if c, ok := chainLLM.(io.Closer); ok {
		defer c.Close()
	}

	adv := advisor.New(chainLLM, lookupLLM)

	fmt.Println("Car Saarthi — your car buying assistant. Type 'exit' to quit.")
	scanner := bufio.NewScanner(os.Stdin)
	for {
		fmt.Print("\nYou: ")
		if !scanner.Scan() {
			break
		}
		query := strings.TrimSpace(scanner.Text())
		if query == "" {
			fmt.Println("Please enter some text.")
			continue
		}
		if q := strings.ToLower(query); q == "exit" || q == "quit" {
			fmt.Println("Goodbye!")
			break
		}

		resp, err := adv.Recommend(context.Background(), apimodels.RecommendRequest{Query: query})
		if err != nil {
			// A single failed request never ends the session.
			fmt.Println("Error:", err)
			continue
		}

		if resp.Metadata.Fallback {
			fmt.Println("\nChain failed; showing directly extracted requirements instead:")
		}
		out, _ := render.Pretty(resp.Result)
		fmt.Println(out)
	}
}
