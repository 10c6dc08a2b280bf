package main

import (
	"flag"
	"fmt"
	"log"
	"time"
)

// Seeds a demo account with a few sample applications through the
// public API, for local frontend development against real data.
func main() {
	baseURL := flag.String("url", "http://localhost:8080", "base URL of a running jobtracker server")
	email := flag.String("email", "demo@jobtracker.local", "email for the demo account")
	password := flag.String("password", "demopassword123", "password for the demo account")
	flag.Parse()

	client, err := NewAPIClient(*baseURL)
	if err != nil {
		log.Fatalf("failed to create API client: %v", err)
	}

	user, err := client.RegisterUser(*email, *password, "Demo User")
	if err != nil {
		// Account may exist from a previous run; logging in is enough.
		log.Printf("register skipped: %v", err)
	} else {
		log.Printf("registered %s (%s)", user.Email, user.ID)
	}

	if _, err := client.Login(*email, *password); err != nil {
		log.Fatalf("login failed: %v", err)
	}

	today := time.Now()
	samples := []map[string]string{
		{
			"companyName": "Acme Corp",
			"jobTitle":    "Backend Engineer",
			"status":      "APPLIED",
			"dateApplied": today.AddDate(0, 0, -10).Format("2006-01-02"),
			"notes":       "Referred by a former colleague",
		},
		{
			"companyName": "Globex",
			"jobTitle":    "Platform Engineer",
			"status":      "INTERVIEWING",
			"dateApplied": today.AddDate(0, 0, -21).Format("2006-01-02"),
			"notes":       "Second round scheduled",
		},
		{
			"companyName": "Initech",
			"jobTitle":    "Software Developer",
			"status":      "REJECTED",
			"dateApplied": today.AddDate(0, 0, -45).Format("2006-01-02"),
		},
		{
			"companyName": "Hooli",
			"jobTitle":    "Site Reliability Engineer",
		},
	}

	for _, sample := range samples {
		app, err := client.CreateApplication(sample)
		if err != nil {
			log.Fatalf("failed to create application: %v", err)
		}
		log.Printf("created %s @ %s (%s)", app.JobTitle, app.CompanyName, app.Status)
	}

	apps, err := client.ListApplications()
	if err != nil {
		log.Fatalf("failed to list applications: %v", err)
	}

	fmt.Printf("seeded account %s now has %d applications\n", *email, len(apps))
}
