package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"time"

	"github.com/fatih/color"
)

const baseURL = "http://localhost:8000"

// Simplified DTOs for the script
type ChatRequest struct {
	SessionID string `json:"session_id"`
	Message   string `json:"message"`
	Persona   string `json:"persona"`
}

type ChatResponse struct {
	Reply       string            `json:"reply"`
	Mode        string            `json:"mode"`
	Company     *string           `json:"company"`
	AccountPlan map[string]string `json:"account_plan"`
}

type CreateSessionResponse struct {
	Data struct {
		ID string `json:"id"`
	} `json:"data"`
}

func main() {
	color.Cyan("🚀 Account Plan Workflow Simulation\n")

	sessionID, err := createSession()
	if err != nil {
		log.Fatalf("Failed to create session: %v", err)
	}
	color.Green("Session Created: %s", sessionID)

	// Walk the four phases end to end.
	turns := []string{
		"hello there",
		"Research Acme Corp",
		"go ahead",
		"generate plan",
		"Rewrite risks_and_red_flags to be shorter",
	}

	for _, text := range turns {
		color.Yellow("\nUSER: %s", text)

		start := time.Now()
		res, err := sendChat(sessionID, text)
		elapsed := time.Since(start)

		if err != nil {
			color.Red("Error: %v", err)
			continue
		}

		color.Green("MODE: %s (%.2fs)", res.Mode, elapsed.Seconds())
		if res.Company != nil {
			color.Green("COMPANY: %s", *res.Company)
		}
		fmt.Println(res.Reply)
	}
}

func createSession() (string, error) {
	resp, err := http.Post(baseURL+"/chat/session", "application/json", nil)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	var out CreateSessionResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return "", err
	}
	return out.Data.ID, nil
}

func sendChat(sessionID, text string) (*ChatResponse, error) {
	payload, err := json.Marshal(ChatRequest{
		SessionID: sessionID,
		Message:   text,
		Persona:   "efficient",
	})
	if err != nil {
		return nil, err
	}

	resp, err := http.Post(baseURL+"/chat", "application/json", bytes.NewReader(payload))
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("status %d: %s", resp.StatusCode, string(body))
	}

	var out ChatResponse
	if err := json.Unmarshal(body, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
