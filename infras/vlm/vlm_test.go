package vlm_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"syncguard/infras/vlm"
)

func TestExtractJSON(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		want    string
		wantErr bool
	}{
		{
			name: "bare object",
			raw:  `{"name":"Asha Rao"}`,
			want: `{"name":"Asha Rao"}`,
		},
		{
			name: "markdown fenced reply",
			raw:  "Here is the extraction:\n```json\n{\"name\":\"Asha Rao\",\"id_type\":\"Aadhaar\"}\n```\nLet me know if you need more.",
			want: `{"name":"Asha Rao","id_type":"Aadhaar"}`,
		},
		{
			name: "nested objects stay balanced",
			raw:  `prefix {"guest":{"name":"Asha"},"rooms":2} suffix {"ignored":true}`,
			want: `{"guest":{"name":"Asha"},"rooms":2}`,
		},
		{
			name: "braces inside strings do not close the object",
			raw:  `{"note":"use {curly} braces","ok":true}`,
			want: `{"note":"use {curly} braces","ok":true}`,
		},
		{
			name: "escaped quotes inside strings",
			raw:  `{"note":"she said \"hello {\" there","ok":true}`,
			want: `{"note":"she said \"hello {\" there","ok":true}`,
		},
		{
			name:    "no object at all",
			raw:     "the model declined to answer",
			wantErr: true,
		},
		{
			name:    "unbalanced object",
			raw:     `{"name":"Asha Rao"`,
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := vlm.ExtractJSON(tt.raw)

			if tt.wantErr {
				assert.Error(t, err)

				return
			}

			assert.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
