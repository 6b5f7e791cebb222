package service_test

import (
	"encoding/base64"
	"errors"
	"strings"
	"testing"

	"warung-qris/shop-svc/internal/service"

	"github.com/skip2/go-qrcode"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestQRGenerator_Generate(t *testing.T) {
	gen := service.NewQRGenerator("ID1020304050", nil)

	uri := gen.Generate(50000, "20240131142502", "Warung QRIS")

	require.True(t, strings.HasPrefix(uri, "data:image/png;base64,"))
	png, err := base64.StdEncoding.DecodeString(strings.TrimPrefix(uri, "data:image/png;base64,"))
	require.NoError(t, err)
	assert.Equal(t, "\x89PNG", string(png[:4]))
}

func TestQRGenerator_Fallbacks(t *testing.T) {
	type call struct {
		content string
		level   qrcode.RecoveryLevel
	}

	tests := []struct {
		name          string
		failures      int
		expected      string
		expectedCalls []call
	}{
		{
			name:     "full_payload",
			failures: 0,
			expected: "data:image/png;base64," + base64.StdEncoding.EncodeToString([]byte("png")),
			expectedCalls: []call{
				{"QRIS|M1|50000|20240131142502|Warung QRIS", qrcode.Medium},
			},
		},
		{
			name:     "simplified_payload",
			failures: 1,
			expected: "data:image/png;base64," + base64.StdEncoding.EncodeToString([]byte("png")),
			expectedCalls: []call{
				{"QRIS|M1|50000|20240131142502|Warung QRIS", qrcode.Medium},
				{"50000|20240131142502", qrcode.Low},
			},
		},
		{
			name:     "placeholder",
			failures: 2,
			expected: service.QRPlaceholder,
			expectedCalls: []call{
				{"QRIS|M1|50000|20240131142502|Warung QRIS", qrcode.Medium},
				{"50000|20240131142502", qrcode.Low},
			},
		},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			var calls []call
			gen := service.NewQRGenerator("M1", nil)
			gen.Encode = func(content string, level qrcode.RecoveryLevel, size int) ([]byte, error) {
				calls = append(calls, call{content, level})
				if len(calls) <= testCase.failures {
					return nil, errors.New("content too long")
				}
				return []byte("png"), nil
			}

			assert.Equal(t, testCase.expected, gen.Generate(50000, "20240131142502", "Warung QRIS"))
			assert.Equal(t, testCase.expectedCalls, calls)
		})
	}
}
