// Dev/test client for dev/test/troubleshooting: walks each form through its
// steps against a locally running server.
package main

import (
	"context"
	"flag"
	"log"

	"floodwatch/form"
)

var serverURL = flag.String("server_url", "http://127.0.0.1:8080", "Floodwatch server base URL")

func runForm(def form.Definition, steps []form.Draft) {
	store := form.NewMemoryStore()
	ctrl := form.NewController(def, store, form.NewClient(*serverURL, def))

	for _, input := range steps {
		if errs := ctrl.Next(input); errs != nil {
			log.Printf("%s: step %d rejected: %v", def.Key, ctrl.Step(), errs)
			return
		}
	}
	if !ctrl.AtReview() {
		log.Printf("%s: expected review step, at %d", def.Key, ctrl.Step())
		return
	}

	res, err := ctrl.ConfirmSubmit(context.Background())
	if err != nil {
		log.Printf("%s: %v", def.Key, err)
		return
	}
	log.Printf("%s: %s %s", def.Key, res.Outcome, res.Message)
}

func main() {
	flag.Parse()

	runForm(form.FloodReportForm(), []form.Draft{
		{"reporterName": "Somchai", "phoneNumber": "0812345678", "address": "12 Riverside Rd"},
		{"floodStatus": "watch"},
	})

	runForm(form.HelpRequestForm(), []form.Draft{
		{"reporterName": "Somchai", "phoneNumber": "0812345678", "address": "12 Riverside Rd"},
		{"helpTypes": []string{"food", "boat"}, "urgencyLevel": "high"},
	})

	runForm(form.DamageReportForm(), []form.Draft{
		{"reporterName": "Somchai", "phoneNumber": "0812345678", "address": "12 Riverside Rd"},
		{"assessmentDate": "2025-11-02", "damageList": "fence, storage shed"},
		{"propertyDamage": 1500, "additionalNotes": "water has receded"},
	})
}
