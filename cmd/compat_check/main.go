package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"

	"paw-match/internal/domain"
	"paw-match/internal/sentiment"
	"paw-match/internal/service"
)

// Herramienta de inspección: calcula similitud y score compuesto entre dos
// perros descritos en archivos JSON, sin tocar la base de datos.
//
//	compat_check -a rex.json -b luna.json -threshold 0.85

type dogFile struct {
	Name     string          `json:"name"`
	Traits   domain.TraitSet `json:"traits"`
	Comments []string        `json:"comments"`
}

func main() {
	pathA := flag.String("a", "", "JSON file for the first dog")
	pathB := flag.String("b", "", "JSON file for the second dog")
	threshold := flag.Float64("threshold", service.DefaultCompatThreshold, "compatibility threshold")
	smoothing := flag.Float64("k", service.DefaultSmoothing, "sentiment smoothing constant")
	scale := flag.Int("scale", 5, "sociability scale upper bound")
	flag.Parse()

	if *pathA == "" || *pathB == "" {
		flag.Usage()
		os.Exit(2)
	}

	dogA, err := loadDog(*pathA)
	if err != nil {
		log.Fatalf("load %s: %v", *pathA, err)
	}
	dogB, err := loadDog(*pathB)
	if err != nil {
		log.Fatalf("load %s: %v", *pathB, err)
	}

	ctx := context.Background()
	embedder := service.NewTraitEmbedder(*scale)
	engine := service.NewScoreEngine(*threshold, *smoothing)
	analyzer := sentiment.NewLexicalAnalyzer()

	cosine := service.Cosine(embedder.Embed(dogA.Traits), embedder.Embed(dogB.Traits))
	sentA := analyzer.Average(ctx, dogA.Comments)
	sentB := analyzer.Average(ctx, dogB.Comments)
	score := engine.Composite(cosine, sentA, sentB)

	fmt.Printf("%s vs %s\n", dogA.Name, dogB.Name)
	fmt.Printf("  cosine similarity: %.4f\n", cosine)
	fmt.Printf("  sentiment %-12s %.4f\n", dogA.Name+":", sentA)
	fmt.Printf("  sentiment %-12s %.4f\n", dogB.Name+":", sentB)
	fmt.Printf("  composite score:   %.4f\n", score)
	fmt.Printf("  compatible:        %v (threshold %.2f)\n", engine.Compatible(score), *threshold)
}

func loadDog(path string) (dogFile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return dogFile{}, err
	}
	var dog dogFile
	if err := json.Unmarshal(data, &dog); err != nil {
		return dogFile{}, err
	}
	if dog.Name == "" {
		dog.Name = path
	}
	return dog, nil
}
