package langdetect

import "testing"

func TestDetect(t *testing.T) {
	tests := []struct {
		name string
		text string
		want string
	}{
		{
			name: "english",
			text: "The quick brown fox jumps over the lazy dog. This agreement is entered into by and between the parties named below.",
			want: "en",
		},
		{
			name: "german",
			text: "Der schnelle braune Fuchs springt über den faulen Hund. Diese Vereinbarung wird zwischen den unten genannten Parteien geschlossen.",
			want: "de",
		},
		{
			name: "spanish",
			text: "El rápido zorro marrón salta sobre el perro perezoso. Este acuerdo se celebra entre las partes mencionadas a continuación.",
			want: "es",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Detect(tt.text)
			if err != nil {
				t.Fatalf("Detect() error: %v", err)
			}
			if got != tt.want {
				t.Errorf("Detect() = %q, want %q", got, tt.want)
			}
		})
	}
}
