package appliance_test

import (
	"io"
	"log/slog"
	"strings"
	"testing"

	"remote-control/internal/appliance"
	"remote-control/internal/command"
	"remote-control/internal/domain"
)

var (
	_ command.Light      = (*appliance.Light)(nil)
	_ command.GarageDoor = (*appliance.GarageDoor)(nil)
	_ command.Stereo     = (*appliance.Stereo)(nil)
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestHome_AddAndFind(t *testing.T) {
	home := appliance.NewHome(discardLogger())

	for _, a := range []domain.Appliance{
		{Name: "Living Room Light", Kind: domain.ApplianceKindLight},
		{Name: "garage", Kind: domain.ApplianceKindGarageDoor},
		{Name: "stereo", Kind: domain.ApplianceKindStereo},
	} {
		if _, err := home.Add(a); err != nil {
			t.Fatalf("Add(%s) error: %v", a.Name, err)
		}
	}

	r, ok := home.Find("  living room LIGHT ")
	if !ok {
		t.Fatal("expected case-insensitive match")
	}
	if _, isLight := r.(*appliance.Light); !isLight {
		t.Errorf("Find: got %T, want *appliance.Light", r)
	}

	if _, ok := home.Find("kitchen"); ok {
		t.Error("unexpected match for kitchen")
	}

	if n := len(home.List()); n != 3 {
		t.Errorf("List: got %d, want 3", n)
	}
}

func TestHome_AddErrors(t *testing.T) {
	home := appliance.NewHome(discardLogger())
	if _, err := home.Add(domain.Appliance{Name: "lamp", Kind: domain.ApplianceKindLight}); err != nil {
		t.Fatalf("Add error: %v", err)
	}

	tests := []struct {
		name string
		in   domain.Appliance
	}{
		{"duplicate", domain.Appliance{Name: "LAMP", Kind: domain.ApplianceKindLight}},
		{"empty name", domain.Appliance{Name: " ", Kind: domain.ApplianceKindLight}},
		{"unknown kind", domain.Appliance{Name: "fan", Kind: "ceiling_fan"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := home.Add(tt.in); err == nil {
				t.Error("expected error")
			}
		})
	}
}

func TestReceiverStates(t *testing.T) {
	logger := discardLogger()

	light := appliance.NewLight("lamp", logger)
	light.On()
	if !light.State().On {
		t.Error("light should be on")
	}
	light.Off()
	if light.State().On {
		t.Error("light should be off")
	}

	door := appliance.NewGarageDoor("garage", logger)
	door.Up()
	if !door.IsOpen() {
		t.Error("door should be open")
	}
	door.Down()
	if door.IsOpen() {
		t.Error("door should be closed")
	}

	stereo := appliance.NewStereo("stereo", logger)
	stereo.On()
	stereo.SetCD()
	stereo.SetVolume(11)

	want := domain.ApplianceState{
		Name:   "stereo",
		Kind:   domain.ApplianceKindStereo,
		On:     true,
		Source: appliance.SourceCD,
		Volume: 11,
	}
	if got := stereo.State(); got != want {
		t.Errorf("stereo state: got %+v, want %+v", got, want)
	}
}

func TestHome_Summary(t *testing.T) {
	home := appliance.NewHome(discardLogger())
	r, _ := home.Add(domain.Appliance{Name: "garage", Kind: domain.ApplianceKindGarageDoor})
	_, _ = home.Add(domain.Appliance{Name: "lamp", Kind: domain.ApplianceKindLight})

	r.(*appliance.GarageDoor).Up()

	summary := home.Summary()
	for _, want := range []string{"- garage (garage_door, open)", "- lamp (light, off)"} {
		if !strings.Contains(summary, want) {
			t.Errorf("Summary missing %q:\n%s", want, summary)
		}
	}
}
