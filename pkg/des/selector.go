/*
 Copyright SecureKey Technologies Inc. All Rights Reserved.

 SPDX-License-Identifier: Apache-2.0
*/

package des

import (
	"fmt"

	"github.com/cipherfoundry/desengine/spi/primitive"
)

// selectCipherPrimitive maps an effective key bit length and cipher mode to the primitive implementing that
// combination. Single length (56-bit) keys are only accepted when allowWeak is set.
func selectCipherPrimitive(bitLen uint, mode CipherMode, allowWeak bool) (primitive.ID, error) {
	switch bitLen {
	case 112, 168:
	case 56:
		if !allowWeak {
			return "", fmt.Errorf("invalid DES key length (%d bits): %w", bitLen, ErrInvalidKeyLength)
		}

		// People shouldn't really be using 56-bit DES keys.
		logger.Debugf("CAUTION: use of 56-bit DES keys is not recommended!")
	default:
		return "", fmt.Errorf("invalid DES key length (%d bits): %w", bitLen, ErrInvalidKeyLength)
	}

	switch mode {
	case CBC:
		switch bitLen {
		case 56:
			return primitive.DESCBC, nil
		case 112:
			return primitive.DESEDECBC, nil
		case 168:
			return primitive.DESEDE3CBC, nil
		}
	case ECB:
		switch bitLen {
		case 56:
			return primitive.DESECB, nil
		case 112:
			return primitive.DESEDEECB, nil
		case 168:
			return primitive.DESEDE3ECB, nil
		}
	case OFB:
		switch bitLen {
		case 56:
			return primitive.DESOFB, nil
		case 112:
			return primitive.DESEDEOFB, nil
		case 168:
			return primitive.DESEDE3OFB, nil
		}
	case CFB:
		switch bitLen {
		case 56:
			return primitive.DESCFB, nil
		case 112:
			return primitive.DESEDECFB, nil
		case 168:
			return primitive.DESEDE3CFB, nil
		}
	}

	return "", fmt.Errorf("invalid DES cipher mode %d: %w", mode, ErrInvalidMode)
}

// selectWrapPrimitive maps a raw (parity inclusive) key bit length and wrap flavor to the primitive implementing
// that combination. Unknown key lengths and unknown wrap modes both report an invalid mode, matching the
// original selection behavior.
func selectWrapPrimitive(bitLen uint, mode WrapMode) (primitive.ID, error) {
	switch mode {
	case DESKeyWrap:
		switch bitLen {
		case 64:
			return primitive.DESKW, nil
		case 128:
			return primitive.DESEDEKW, nil
		case 192:
			return primitive.DESEDE3KW, nil
		}
	case DESCBCKeyWrap:
		switch bitLen {
		case 64:
			return primitive.DESCBCKW, nil
		case 128:
			return primitive.DESEDECBCKW, nil
		case 192:
			return primitive.DESEDE3CBCKW, nil
		}
	}

	return "", fmt.Errorf("unknown DES key wrap mode %s for %d bit key: %w", mode, bitLen, ErrInvalidMode)
}
