package main

import (
	"fmt"
	"os"
	"time"

	"github.com/google/uuid"

	"github.com/vlinks/planner/internal/model"
	"github.com/vlinks/planner/internal/render"
)

// Renders a sample week to week.png, handy for eyeballing layout
// changes without touching real data.
func main() {
	entries := []*model.ScheduleEntry{
		{ID: uuid.NewString(), Title: "Linear Algebra", Room: "B-204", Day: 1, Start: "09:00", End: "10:30", Color: "#93c5fd"},
		{ID: uuid.NewString(), Title: "Physics Lab", Room: "Lab 3", Day: 1, Start: "14:00", End: "16:00", Color: "#fca5a5"},
		{ID: uuid.NewString(), Title: "English", Day: 2, Start: "10:00", End: "11:00", Color: "#86efac"},
		{ID: uuid.NewString(), Title: "Statistics", Room: "A-101", Day: 3, Start: "08:30", End: "10:00", Color: "#fcd34d"},
		{ID: uuid.NewString(), Title: "Seminar: Research Methods and Academic Writing", Day: 3, Start: "15:00", End: "15:15", Color: "#c4b5fd"},
		{ID: uuid.NewString(), Title: "Piano Practice", Day: 5, Start: "17:00", End: "18:00", Color: "#f9a8d4"},
	}

	img, err := render.New(8, 19, "#93c5fd", os.Getenv("PLANNER_FONT")).Week(entries, time.Now())
	if err != nil {
		fmt.Printf("Failed to render week: %v\n", err)
		os.Exit(1)
	}

	if err := os.WriteFile("week.png", img, 0o644); err != nil {
		fmt.Printf("Failed to save file: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("Saved week.png (%d entries)\n", len(entries))
}
