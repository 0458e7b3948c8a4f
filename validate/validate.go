// Command validate provides a small CLI that validates rule set JSON files
// in the ../configs directory. It checks:
//   - JSON structure and required fields
//   - Cash constraints (starting cash, GO salary, jail fine all sane)
//   - Jail settings (fine affordable from starting cash, positive turn limit)
//   - Building stock vs. what the board can absorb
//   - Auction floor not priced above the cheapest deed
//   - Economy balance: enough cash in play to cover early property purchases
package main

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/wricardo/mcp-training/monopoly/game/engine"
)

// RuleFile mirrors the JSON schema for a rule set file.
type RuleFile struct {
	Name                 string `json:"name"`
	Description          string `json:"description"`
	StartingCash         int    `json:"starting_cash"`
	GoSalary             int    `json:"go_salary"`
	JailFine             int    `json:"jail_fine"`
	MaxJailTurns         int    `json:"max_jail_turns"`
	Houses               int    `json:"houses"`
	Hotels               int    `json:"hotels"`
	AuctionFloor         int    `json:"auction_floor"`
	UnmortgagePremiumPct int    `json:"unmortgage_premium_pct"`
}

// ValidationResult captures the outcome of validating a single file.
// If Valid is true, Errors contains informational messages; otherwise it
// accumulates the validation errors that were found.
type ValidationResult struct {
	File   string
	Valid  bool
	Errors []string
}

// validateRuleFile loads and validates a single rule set JSON file.
// It performs structural checks, cash and jail validation, and board
// consistency analysis against the fixed 40-space catalog.
func validateRuleFile(filePath string) ValidationResult {
	result := ValidationResult{
		File:   filepath.Base(filePath),
		Valid:  true,
		Errors: []string{},
	}

	data, err := os.ReadFile(filePath)
	if err != nil {
		result.Valid = false
		result.Errors = append(result.Errors, fmt.Sprintf("Failed to read file: %v", err))
		return result
	}

	var rules RuleFile
	if err := json.Unmarshal(data, &rules); err != nil {
		result.Valid = false
		result.Errors = append(result.Errors, fmt.Sprintf("Invalid JSON: %v", err))
		return result
	}

	if rules.Name == "" {
		result.Valid = false
		result.Errors = append(result.Errors, "Missing required field: name")
	}

	// Validate cash settings
	if rules.StartingCash <= 0 {
		result.Valid = false
		result.Errors = append(result.Errors, fmt.Sprintf("starting_cash must be positive, got %d", rules.StartingCash))
	}

	if rules.GoSalary < 0 {
		result.Valid = false
		result.Errors = append(result.Errors, fmt.Sprintf("go_salary cannot be negative, got %d", rules.GoSalary))
	}

	// Validate jail settings
	if rules.JailFine <= 0 {
		result.Valid = false
		result.Errors = append(result.Errors, fmt.Sprintf("jail_fine must be positive, got %d", rules.JailFine))
	}

	if rules.MaxJailTurns <= 0 {
		result.Valid = false
		result.Errors = append(result.Errors, fmt.Sprintf("max_jail_turns must be positive, got %d", rules.MaxJailTurns))
	}

	if rules.JailFine > 0 && rules.StartingCash > 0 && rules.JailFine > rules.StartingCash {
		result.Valid = false
		result.Errors = append(result.Errors, fmt.Sprintf("jail_fine (%d) cannot exceed starting_cash (%d)", rules.JailFine, rules.StartingCash))
	}

	// Validate building stock
	if rules.Houses <= 0 {
		result.Valid = false
		result.Errors = append(result.Errors, fmt.Sprintf("houses must be positive, got %d", rules.Houses))
	}

	if rules.Hotels <= 0 {
		result.Valid = false
		result.Errors = append(result.Errors, fmt.Sprintf("hotels must be positive, got %d", rules.Hotels))
	}

	if rules.AuctionFloor <= 0 {
		result.Valid = false
		result.Errors = append(result.Errors, fmt.Sprintf("auction_floor must be positive, got %d", rules.AuctionFloor))
	}

	if rules.UnmortgagePremiumPct < 0 {
		result.Valid = false
		result.Errors = append(result.Errors, fmt.Sprintf("unmortgage_premium_pct cannot be negative, got %d", rules.UnmortgagePremiumPct))
	}

	// Board consistency - compare the rule set against the fixed catalog
	if result.Valid {
		boardResult := validateAgainstBoard(rules)
		if !boardResult.Valid {
			result.Valid = false
		}
		result.Errors = append(result.Errors, boardResult.Errors...)
	}

	// Add informational data
	if result.Valid {
		result.Errors = append(result.Errors, fmt.Sprintf("✓ Name: %s", rules.Name))
		result.Errors = append(result.Errors, fmt.Sprintf("✓ Starting cash: $%d, GO salary: $%d", rules.StartingCash, rules.GoSalary))
		result.Errors = append(result.Errors, fmt.Sprintf("✓ Jail: $%d fine, %d turn limit", rules.JailFine, rules.MaxJailTurns))
		result.Errors = append(result.Errors, fmt.Sprintf("✓ Building stock: %d houses, %d hotels", rules.Houses, rules.Hotels))
		result.Errors = append(result.Errors, fmt.Sprintf("✓ Auction floor: $%d", rules.AuctionFloor))
	}

	return result
}

// validateAgainstBoard checks the rule set against the fixed 40-space board:
// the auction floor must not exceed the cheapest deed, starting cash should
// cover at least a couple of average purchases, and the house pool should
// sustain a meaningful share of full development.
func validateAgainstBoard(rules RuleFile) ValidationResult {
	result := ValidationResult{
		Valid:  true,
		Errors: []string{},
	}

	cheapest := 0
	streets := 0
	totalPrice := 0
	ownable := 0
	for _, space := range engine.Board() {
		if !space.Ownable() {
			continue
		}
		ownable++
		totalPrice += space.Price
		if cheapest == 0 || space.Price < cheapest {
			cheapest = space.Price
		}
		if space.HouseCost > 0 {
			streets++
		}
	}

	if rules.AuctionFloor > cheapest {
		result.Valid = false
		result.Errors = append(result.Errors, fmt.Sprintf("auction_floor (%d) exceeds the cheapest deed price (%d), making it unsellable at auction", rules.AuctionFloor, cheapest))
	}

	avgPrice := totalPrice / ownable
	if rules.StartingCash < avgPrice*2 {
		result.Valid = false
		result.Errors = append(result.Errors, fmt.Sprintf("starting_cash (%d) is below twice the average deed price (%d), players cannot get started", rules.StartingCash, avgPrice))
	}

	// Full development needs 4 houses per street. A pool under a quarter of
	// that stalls building before any group completes.
	fullHouses := streets * 4
	if rules.Houses*4 < fullHouses {
		result.Valid = false
		result.Errors = append(result.Errors, fmt.Sprintf("houses (%d) covers under a quarter of full development (%d needed for all %d streets)", rules.Houses, fullHouses, streets))
	}

	if result.Valid {
		result.Errors = append(result.Errors, fmt.Sprintf("✓ Board: %d ownable deeds, cheapest $%d, average $%d", ownable, cheapest, avgPrice))
	}

	return result
}

// main scans ../configs for *.json files and validates each one, printing a
// concise report and exiting with non-zero status if any are invalid.
func main() {
	rulesDir := "../configs"
	files, err := filepath.Glob(filepath.Join(rulesDir, "*.json"))
	if err != nil {
		fmt.Printf("Error finding rule files: %v\n", err)
		os.Exit(1)
	}

	allValid := true
	for _, file := range files {
		result := validateRuleFile(file)

		fmt.Printf("\n%s %s\n", strings.Repeat("=", 20), result.File)

		if result.Valid {
			fmt.Println("✅ VALID")
			for _, info := range result.Errors {
				fmt.Println("  " + info)
			}
		} else {
			fmt.Println("❌ INVALID")
			allValid = false
			for _, err := range result.Errors {
				if !strings.HasPrefix(err, "✓") {
					fmt.Println("  ❌ " + err)
				}
			}
		}
	}

	fmt.Printf("\n%s\n", strings.Repeat("=", 40))
	if allValid {
		fmt.Println("✅ All rule sets are valid!")
	} else {
		fmt.Println("❌ Some rule sets have errors")
		os.Exit(1)
	}
}
