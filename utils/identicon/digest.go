package identicon

import (
	"golang.org/x/crypto/blake2b"
)

// DigestSize 正規化ダイジェストのバイト長
const DigestSize = blake2b.Size

// baseline 32byteのゼロ列のハッシュ。シードのハッシュからバイト毎に差し引かれる
var baseline = blake2b.Sum512(make([]byte, 32))

// Digest 正規化ダイジェスト
type Digest [DigestSize]byte

// Normalize シードのBLAKE2b-512ハッシュからbaselineをバイト毎に引いた(mod 256)正規化ダイジェストを返します
func Normalize(seed []byte) Digest {
	sum := blake2b.Sum512(seed)

	var d Digest
	for i := range d {
		d[i] = sum[i] - baseline[i]
	}
	return d
}
