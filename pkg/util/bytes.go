package util

import "crypto/md5"

func HashBytes(b []byte) []byte {
	res := md5.Sum(b)
	return res[:]
}

