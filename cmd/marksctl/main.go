// marksctl inspects a mark sheet from the command line: class statistics,
// per-subject summary, and optional filtered CSV export.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/fatih/color"
	"github.com/olekukonko/tablewriter"

	"marksheet/internal/marks"
)

func main() {
	var (
		file       = flag.String("file", "", "path to a CSV or XLSX mark sheet (required)")
		threshold  = flag.Int("threshold", marks.DefaultThreshold, "pass threshold, inclusive")
		filterType = flag.String("filter", "all", "filter: all, overall_pass, overall_fail, subject_pass, subject_fail")
		subject    = flag.String("subject", "", "subject name for subject_pass/subject_fail")
		out        = flag.String("out", "", "write the filtered rows to this CSV file")
	)
	flag.Parse()

	if *file == "" {
		flag.Usage()
		os.Exit(2)
	}
	if *threshold < 0 || *threshold > 100 {
		log.Fatal("threshold must be between 0 and 100")
	}

	table, err := loadTable(*file)
	if err != nil {
		log.Fatal(err)
	}

	predicate, description, err := resolveFilter(table, *filterType, *subject, *threshold)
	if err != nil {
		log.Fatal(err)
	}
	filtered := table.Filter(predicate)

	printOverview(*file, description, filtered, *threshold)
	printSummary(filtered, *threshold)

	if *out != "" {
		if err := writeFiltered(*out, filtered); err != nil {
			log.Fatal(err)
		}
		color.Green("Wrote %d rows to %s", len(filtered.Records), *out)
	}
}

func loadTable(path string) (*marks.Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	switch strings.ToLower(filepath.Ext(path)) {
	case ".csv":
		return marks.ReadCSV(f)
	case ".xlsx":
		return marks.ReadWorkbook(f)
	default:
		return nil, fmt.Errorf("unsupported file format %q, use CSV or XLSX", filepath.Ext(path))
	}
}

func resolveFilter(table *marks.Table, filterType, subject string, threshold int) (marks.Predicate, string, error) {
	switch filterType {
	case "all":
		return marks.All(), "all students", nil
	case "overall_pass":
		return marks.PassedAll(threshold), "students who passed all subjects", nil
	case "overall_fail":
		return marks.FailedAny(threshold), "students who failed at least one subject", nil
	case "subject_pass", "subject_fail":
		if subject == "" {
			return nil, "", fmt.Errorf("-subject is required for filter %s", filterType)
		}
		if !table.HasSubject(subject) {
			return nil, "", fmt.Errorf("subject %q not found, available: %s", subject, strings.Join(table.Subjects, ", "))
		}
		if filterType == "subject_pass" {
			return marks.SubjectPass(subject, threshold), "students who passed " + subject, nil
		}
		return marks.SubjectFail(subject, threshold), "students who failed " + subject, nil
	default:
		return nil, "", fmt.Errorf("invalid filter %q", filterType)
	}
}

func printOverview(path, description string, table *marks.Table, threshold int) {
	overview := marks.Overall(table, threshold)

	color.New(color.FgCyan, color.Bold).Printf("%s: %s\n\n", filepath.Base(path), description)
	fmt.Printf("Total students:  %d\n", overview.TotalStudents)
	color.Green("Passed students: %d", overview.PassedStudents)
	color.Red("Failed students: %d", overview.FailedStudents)
	fmt.Printf("Pass percentage: %.2f%%\n", overview.PassPercentage)
	fmt.Printf("Average mark:    %.2f\n", overview.AverageMark)
	fmt.Printf("Highest mark:    %d\n", overview.HighestMark)
	fmt.Printf("Lowest mark:     %d\n\n", overview.LowestMark)
}

func printSummary(table *marks.Table, threshold int) {
	writer := tablewriter.NewWriter(os.Stdout)
	writer.SetHeader([]string{"Subject", "Average", "Passed", "Failed", "Total", "Pass %"})

	for _, s := range marks.Summarize(table, threshold) {
		writer.Append([]string{
			s.Subject,
			strconv.FormatFloat(s.Average, 'f', 2, 64),
			strconv.Itoa(s.Passed),
			strconv.Itoa(s.Failed),
			strconv.Itoa(s.Total),
			fmt.Sprintf("%.2f", s.PassPercentage),
		})
	}
	writer.Render()
}

func writeFiltered(path string, table *marks.Table) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	if err := marks.WriteCSV(f, table); err != nil {
		return err
	}
	return f.Sync()
}
