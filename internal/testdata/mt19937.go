package testdata

// Генератор Мерсенн Твистер MT19937, инициализируемый так же, как
// random.seed() в CPython (init_by_array). Эталонные наборы данных были
// сгенерированы питоновским random с зерном 42, поэтому для побайтового
// совпадения нужен именно этот генератор, а не math/rand.

const (
	mtN         = 624
	mtM         = 397
	mtMatrixA   = 0x9908b0df
	mtUpperMask = 0x80000000
	mtLowerMask = 0x7fffffff
)

type mt19937 struct {
	mt  [mtN]uint32
	mti int
}

// newMT19937 создает генератор, эквивалентный random.seed(seed) в CPython
func newMT19937(seed uint32) *mt19937 {
	r := &mt19937{}
	r.initByArray([]uint32{seed})
	return r
}

func (r *mt19937) initGenrand(s uint32) {
	r.mt[0] = s
	for i := 1; i < mtN; i++ {
		r.mt[i] = 1812433253*(r.mt[i-1]^(r.mt[i-1]>>30)) + uint32(i)
	}
	r.mti = mtN
}

func (r *mt19937) initByArray(key []uint32) {
	r.initGenrand(19650218)
	i, j := 1, 0
	k := mtN
	if len(key) > k {
		k = len(key)
	}
	for ; k > 0; k-- {
		r.mt[i] = (r.mt[i] ^ ((r.mt[i-1] ^ (r.mt[i-1] >> 30)) * 1664525)) + key[j] + uint32(j)
		i++
		j++
		if i >= mtN {
			r.mt[0] = r.mt[mtN-1]
			i = 1
		}
		if j >= len(key) {
			j = 0
		}
	}
	for k = mtN - 1; k > 0; k-- {
		r.mt[i] = (r.mt[i] ^ ((r.mt[i-1] ^ (r.mt[i-1] >> 30)) * 1566083941)) - uint32(i)
		i++
		if i >= mtN {
			r.mt[0] = r.mt[mtN-1]
			i = 1
		}
	}
	r.mt[0] = 0x80000000
	r.mti = mtN
}

func (r *mt19937) genrandUint32() uint32 {
	if r.mti >= mtN {
		var y uint32
		for kk := 0; kk < mtN-mtM; kk++ {
			y = (r.mt[kk] & mtUpperMask) | (r.mt[kk+1] & mtLowerMask)
			r.mt[kk] = r.mt[kk+mtM] ^ (y >> 1) ^ ((y & 1) * mtMatrixA)
		}
		for kk := mtN - mtM; kk < mtN-1; kk++ {
			y = (r.mt[kk] & mtUpperMask) | (r.mt[kk+1] & mtLowerMask)
			r.mt[kk] = r.mt[kk+mtM-mtN] ^ (y >> 1) ^ ((y & 1) * mtMatrixA)
		}
		y = (r.mt[mtN-1] & mtUpperMask) | (r.mt[0] & mtLowerMask)
		r.mt[mtN-1] = r.mt[mtM-1] ^ (y >> 1) ^ ((y & 1) * mtMatrixA)
		r.mti = 0
	}

	y := r.mt[r.mti]
	r.mti++

	y ^= y >> 11
	y ^= (y << 7) & 0x9d2c5680
	y ^= (y << 15) & 0xefc60000
	y ^= y >> 18
	return y
}

// getrandbits повторяет random.getrandbits(k) для k <= 32
func (r *mt19937) getrandbits(k uint) uint32 {
	return r.genrandUint32() >> (32 - k)
}

// randint повторяет random.randint(a, b) CPython: выборка с отбрасыванием
// по битовой длине диапазона
func (r *mt19937) randint(a, b int64) int64 {
	n := uint32(b - a + 1)
	k := uint(bitLength(n))
	v := r.getrandbits(k)
	for v >= n {
		v = r.getrandbits(k)
	}
	return a + int64(v)
}

func bitLength(n uint32) int {
	bits := 0
	for n > 0 {
		bits++
		n >>= 1
	}
	return bits
}
