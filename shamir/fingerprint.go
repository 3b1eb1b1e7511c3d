package shamir

import (
	"encoding/binary"
	"encoding/hex"

	"github.com/zeebo/blake3"
)

// Fingerprint returns a short hex digest identifying a share, so logs and
// reports can reference shares without exposing their values. The digest
// covers both coordinates including their signs.
func Fingerprint(share *Share) string {
	x := share.X.Bytes()
	y := share.Y.Bytes()

	buf := make([]byte, 0, 10+len(x)+len(y))
	buf = append(buf, signByte(share.X.Sign()))
	buf = binary.BigEndian.AppendUint32(buf, uint32(len(x)))
	buf = append(buf, x...)
	buf = append(buf, signByte(share.Y.Sign()))
	buf = binary.BigEndian.AppendUint32(buf, uint32(len(y)))
	buf = append(buf, y...)

	sum := blake3.Sum256(buf)

	return hex.EncodeToString(sum[:8])
}

func signByte(sign int) byte {
	if sign < 0 {
		return 1
	}

	return 0
}
