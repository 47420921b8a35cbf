// scripts/gcal-auth/main.go
//
// Run this ONCE locally to authorize Google Calendar access and generate token.json.
//
// Usage:
//   go run scripts/gcal-auth/main.go [credentials.json] [token.json]
//
// Open the printed URL, sign in with the Google account whose calendar should
// receive events, paste the authorization code, and the token is saved.
// The script then lists the next week's events to confirm access.

package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"os"
	"time"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
	"google.golang.org/api/calendar/v3"

	"voice-calendar-assistant/pkg/gcalendar"
)

func main() {
	credsPath := "credentials.json"
	if len(os.Args) > 1 {
		credsPath = os.Args[1]
	}
	tokenPath := gcalendar.DefaultTokenPath
	if len(os.Args) > 2 {
		tokenPath = os.Args[2]
	}

	data, err := os.ReadFile(credsPath)
	if err != nil {
		log.Fatalf("Failed to read credentials file %q: %v", credsPath, err)
	}

	config, err := google.ConfigFromJSON(data, calendar.CalendarScope)
	if err != nil {
		log.Fatalf("Failed to parse credentials: %v\nMake sure %q is an OAuth Desktop App credentials file.", err, credsPath)
	}

	authURL := config.AuthCodeURL("state-token", oauth2.AccessTypeOffline)
	fmt.Println("=================================================================")
	fmt.Println("1단계: 아래 URL을 브라우저에서 열고 Google 계정으로 로그인하세요:")
	fmt.Println()
	fmt.Println(authURL)
	fmt.Println()
	fmt.Println("=================================================================")
	fmt.Print("2단계: 브라우저에 표시된 인증 코드를 붙여넣고 Enter를 누르세요: ")

	var code string
	if _, err := fmt.Scan(&code); err != nil {
		log.Fatalf("Failed to read authorization code: %v", err)
	}

	ctx := context.Background()
	tok, err := config.Exchange(ctx, code)
	if err != nil {
		log.Fatalf("Failed to exchange authorization code: %v", err)
	}

	f, err := os.OpenFile(tokenPath, os.O_RDWR|os.O_CREATE|os.O_TRUNC, 0600)
	if err != nil {
		log.Fatalf("Failed to create %s: %v", tokenPath, err)
	}
	if err := json.NewEncoder(f).Encode(tok); err != nil {
		f.Close()
		log.Fatalf("Failed to write %s: %v", tokenPath, err)
	}
	f.Close()

	fmt.Println()
	fmt.Printf("토큰이 저장되었습니다: %s\n", tokenPath)

	client, err := gcalendar.NewClientFromCredentialsFile(ctx, credsPath, tokenPath)
	if err != nil {
		log.Fatalf("Failed to create calendar client: %v", err)
	}

	now := time.Now()
	events, err := client.ListEvents(ctx, gcalendar.ListEventsRequest{
		TimeMin:    now,
		TimeMax:    now.AddDate(0, 0, 7),
		MaxResults: 10,
	})
	if err != nil {
		log.Fatalf("Token saved but listing events failed: %v", err)
	}

	fmt.Printf("앞으로 7일간 일정 %d개를 확인했습니다.\n", len(events))
	for _, ev := range events {
		fmt.Printf("  - %s  %s\n", ev.StartTime.Format("2006-01-02 15:04"), ev.Summary)
	}
	fmt.Println("이제 calendar.provider를 google로 설정하고 서버를 다시 시작하세요.")
}
