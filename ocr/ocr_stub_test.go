//go:build !ocr

package ocr

import (
	"errors"
	"testing"
)

func TestNew_StubReturnsError(t *testing.T) {
	client, err := New()
	if client != nil {
		t.Error("New() should return nil client without the ocr build tag")
	}
	if !errors.Is(err, ErrOCRNotEnabled) {
		t.Errorf("New() error = %v, want ErrOCRNotEnabled", err)
	}
}

func TestStubClient_Operations(t *testing.T) {
	var c *Client

	if err := c.Close(); err != nil {
		t.Errorf("Close() on nil client = %v, want nil", err)
	}
	if _, err := c.RecognizeImage(nil); !errors.Is(err, ErrOCRNotEnabled) {
		t.Errorf("RecognizeImage() error = %v, want ErrOCRNotEnabled", err)
	}
	if err := c.SetLanguage("nor"); !errors.Is(err, ErrOCRNotEnabled) {
		t.Errorf("SetLanguage() error = %v, want ErrOCRNotEnabled", err)
	}
	if err := c.SetPageSegMode(PSM_AUTO); !errors.Is(err, ErrOCRNotEnabled) {
		t.Errorf("SetPageSegMode() error = %v, want ErrOCRNotEnabled", err)
	}
}
