package repository

import (
	"time"

	"github.com/fxamacker/cbor/v2"
)

// Blob keys. Payments are stored per estimate.
const (
	estimatesKey       = "estimates"
	defaultSupplierKey = "default_supplier"
	paymentsKeyPrefix  = "payments/"
)

func paymentsKey(estimateID string) string {
	return paymentsKeyPrefix + estimateID
}

// encMode uses Core Deterministic Encoding: the same collection always
// produces identical bytes. Times keep nanoseconds.
var encMode cbor.EncMode

// decMode ignores unknown fields so older blobs stay readable.
var decMode cbor.DecMode

func init() {
	var err error

	encOptions := cbor.CoreDetEncOptions()
	encOptions.Time = cbor.TimeRFC3339Nano
	encMode, err = encOptions.EncMode()
	if err != nil {
		panic("repository: CBOR encoder initialization failed: " + err.Error())
	}

	decMode, err = cbor.DecOptions{}.DecMode()
	if err != nil {
		panic("repository: CBOR decoder initialization failed: " + err.Error())
	}
}

func marshal(v any) ([]byte, error) {
	return encMode.Marshal(v)
}

func unmarshal(data []byte, v any) error {
	return decMode.Unmarshal(data, v)
}

func nowRFC3339() string {
	return time.Now().UTC().Format(time.RFC3339Nano)
}
