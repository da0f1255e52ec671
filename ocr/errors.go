package ocr

import "errors"

// ErrOCRNotEnabled is returned when OCR functions are called but OCR support
// was not compiled in. Rebuild with -tags ocr to enable OCR support.
var ErrOCRNotEnabled = errors.New("OCR support not enabled; rebuild with -tags ocr")

// DefaultLanguages is the Tesseract language string used by new clients:
// English plus Norwegian, matching the invoices this module targets.
const DefaultLanguages = "eng+nor"
