package main

import (
	"encoding/csv"
	"fmt"
	"log"
	"os"
	"strconv"

	"medipulse/config"
	"medipulse/database"
	"medipulse/models"
)

// Exports a user's prediction history to CSV.
// Usage: go run scripts/exportHistory.go <username>
func main() {
	if len(os.Args) < 2 {
		log.Fatal("Usage: go run scripts/exportHistory.go <username>")
	}
	username := os.Args[1]

	// Load config and connect to database
	config.LoadConfig()
	database.ConnectDb()

	var records []models.HistoryRecord
	if err := database.Database.Db.
		Where("username = ?", username).
		Order("created_at DESC, id DESC").
		Find(&records).Error; err != nil {
		log.Fatalf("Failed to fetch history: %v", err)
	}

	if len(records) == 0 {
		log.Printf("No history records for user %s", username)
		return
	}

	outPath := fmt.Sprintf("history_%s.csv", username)
	file, err := os.Create(outPath)
	if err != nil {
		log.Fatalf("Failed to create CSV file: %v", err)
	}
	defer file.Close()

	writer := csv.NewWriter(file)
	defer writer.Flush()

	header := []string{"record_id", "timestamp", "result", "result_type", "probability", "inputs"}
	if err := writer.Write(header); err != nil {
		log.Fatalf("Failed to write CSV header: %v", err)
	}

	for _, rec := range records {
		row := []string{
			rec.RecordID,
			rec.Timestamp,
			rec.Result,
			rec.ResultType,
			strconv.FormatFloat(rec.Probability, 'f', 1, 64),
			string(rec.Inputs),
		}
		if err := writer.Write(row); err != nil {
			log.Fatalf("Failed to write CSV row: %v", err)
		}
	}

	log.Printf("Exported %d records for %s to %s", len(records), username, outPath)
}
