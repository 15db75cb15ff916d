package main

import (
	"flag"
	"os"
	"path/filepath"

	log "github.com/sirupsen/logrus"

	"github.com/Pranjalsahu8818/healthpredict/internal/app/prediction"
)

func main() {
	out := flag.String("out", "ml_models/disease_model.json", "artifact output path")
	seed := flag.Int64("seed", 42, "random seed for dataset generation")
	flag.Parse()

	samples := prediction.GenerateSamples(*seed)
	log.WithField("samples", len(samples)).Info("synthetic dataset generated")

	artifact := prediction.Train(samples, *seed)

	if err := os.MkdirAll(filepath.Dir(*out), 0o755); err != nil {
		log.WithError(err).Fatal("create output directory")
	}
	if err := artifact.Save(*out); err != nil {
		log.WithError(err).Fatal("write artifact")
	}

	// sanity check: the artifact must load back and score a textbook case
	source, err := prediction.NewModelSource(*out)
	if err != nil {
		log.WithError(err).Fatal("artifact failed to load back")
	}
	engine := prediction.NewEngine(source)
	result := engine.Predict(prediction.PredictRequest{Symptoms: []prediction.Symptom{
		{Name: "fever", Severity: prediction.SeverityModerate, Duration: prediction.DurationDays},
		{Name: "cough", Severity: prediction.SeverityMild, Duration: prediction.DurationDays},
	}})
	if len(result.PredictedDiseases) == 0 {
		log.Fatal("trained model returned no candidates for fever+cough")
	}

	log.WithFields(log.Fields{
		"path":    *out,
		"classes": len(artifact.Classes),
		"top":     result.PredictedDiseases[0].DiseaseName,
	}).Info("model artifact written")
}
