//go:build lambda

package main

import (
	"context"
	"encoding/base64"
	"net/http"
	"strings"
	"testing"

	"github.com/aws/aws-lambda-go/events"
	"github.com/google/go-cmp/cmp"

	"github.com/AustroMelee/avatar-culinary-generator/internal/app"
)

func uint64Ptr(v uint64) *uint64 { return &v }

func TestParseRequest(t *testing.T) {
	tests := []struct {
		name    string
		body    string
		want    app.GenerateRequest
		wantErr string
	}{
		{name: "empty body", body: ""},
		{
			name: "all fields",
			body: `{"type":"dessert","theme":"humble","nations":["air-nomads","water-tribe"],"seed":42,"embellish":true}`,
			want: app.GenerateRequest{
				DishType:  "dessert",
				Theme:     "humble",
				Nations:   []string{"air-nomads", "water-tribe"},
				Seed:      uint64Ptr(42),
				Embellish: true,
			},
		},
		{name: "exponent seed", body: `{"seed":1e3}`, want: app.GenerateRequest{Seed: uint64Ptr(1000)}},
		{name: "zero seed", body: `{"seed":0}`, want: app.GenerateRequest{Seed: uint64Ptr(0)}},
		{name: "fractional seed", body: `{"seed":1.5}`, wantErr: "seed must be a non-negative integer"},
		{name: "negative seed", body: `{"seed":-3}`, wantErr: "seed must be a non-negative integer"},
		{name: "string seed", body: `{"seed":"7"}`, wantErr: "seed must be a non-negative integer"},
		{name: "malformed json", body: `{"seed":`, wantErr: "invalid JSON body"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := parseRequest(tt.body)
			if tt.wantErr != "" {
				if err == nil || err.Error() != tt.wantErr {
					t.Fatalf("err = %v, want %q", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("request mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestHandle_RejectsFractionalSeed(t *testing.T) {
	event := events.LambdaFunctionURLRequest{
		Body:            base64.StdEncoding.EncodeToString([]byte(`{"seed":2.25}`)),
		IsBase64Encoded: true,
	}
	resp, err := handler{}.handle(context.Background(), event)
	if err != nil {
		t.Fatal(err)
	}
	if resp.StatusCode != http.StatusBadRequest || !strings.Contains(resp.Body, "non-negative integer") {
		t.Errorf("got %d %s", resp.StatusCode, resp.Body)
	}
}
