// Bulk question bank import.
//
// Reads a JSON bank file and inserts its questions and comprehension
// passages, then prints a per-category summary so thin department pools
// are visible before candidates hit them.
//
// Usage: go run scripts/import_questions.go <bank.json>

package main

import (
	"aptitude_portal_backend/internal/config"
	"aptitude_portal_backend/internal/repository"
	"aptitude_portal_backend/internal/service"
	"aptitude_portal_backend/internal/util"
	"aptitude_portal_backend/pkg/database"
	"aptitude_portal_backend/pkg/logger"
	"encoding/json"
	"fmt"
	"log"
	"os"
	"strconv"

	"github.com/fatih/color"
	"github.com/olekukonko/tablewriter"
	"gopkg.in/yaml.v3"
)

type bankFile struct {
	Questions []service.QuestionReq `json:"questions"`
	Passages  []service.PassageReq  `json:"passages"`
}

func main() {
	if len(os.Args) < 2 {
		log.Fatal("usage: go run scripts/import_questions.go <bank.json>")
	}

	data, err := os.ReadFile("configs/config.yaml")
	if err != nil {
		log.Fatalf("failed to read config file: %v", err)
	}

	var cfg config.Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		log.Fatalf("failed to parse config file: %v", err)
	}

	logger.InitLogger(&cfg)

	db, err := database.InitDB(&cfg.Database)
	if err != nil {
		log.Fatalf("database connection failed: %v", err)
	}

	raw, err := os.ReadFile(os.Args[1])
	if err != nil {
		log.Fatalf("failed to read bank file: %v", err)
	}
	var bank bankFile
	if err := json.Unmarshal(raw, &bank); err != nil {
		log.Fatalf("failed to parse bank file: %v", err)
	}

	repo := repository.NewQuestionRepository(db)
	svc := service.NewQuestionService(repo, nil)

	imported := make(map[string]int)
	skipped := 0
	for i, q := range bank.Questions {
		if _, err := svc.AddQuestion(q); err != nil {
			log.Printf("skipping question %d: %v", i, err)
			skipped++
			continue
		}
		imported[q.Category]++
	}

	passages := 0
	for i, p := range bank.Passages {
		if _, err := svc.AddPassage(p); err != nil {
			log.Printf("skipping passage %d: %v", i, err)
			skipped++
			continue
		}
		passages++
	}

	fmt.Println(color.GreenString("Import finished"))

	table := tablewriter.NewWriter(os.Stdout)
	table.SetHeader([]string{"Category", "Imported", "Total In Bank"})
	for _, category := range util.QuestionCategories {
		total, _ := repo.CountByCategory(category)
		table.Append([]string{category, strconv.Itoa(imported[category]), strconv.FormatInt(total, 10)})
	}
	table.Append([]string{"comprehension", strconv.Itoa(passages), "-"})
	table.Render()

	if skipped > 0 {
		fmt.Println(color.YellowString("%d entries skipped, see log above", skipped))
	}
}
