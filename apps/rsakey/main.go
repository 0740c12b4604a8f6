//
// main.go
//
// Copyright (c) 2026 Markku Rossi
//
// All rights reserved.
//

package main

import (
	"crypto/rand"
	"encoding/hex"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	"github.com/markkurossi/bignum/digest"
	"github.com/markkurossi/bignum/prg"
	"github.com/markkurossi/bignum/rsa"
	"github.com/markkurossi/bignum/timing"
	"github.com/markkurossi/text/symbols"
)

var (
	verbose = false
)

// Debugf prints debug output if verbose output is enabled.
func Debugf(format string, a ...interface{}) {
	if !verbose {
		return
	}
	fmt.Printf(format, a...)
}

func main() {
	gen := flag.Bool("gen", false, "generate a new key")
	bits := flag.Int("bits", 1024, "key size in bits")
	seed := flag.String("seed", "",
		"generate the key deterministically from `seed`")
	keyFile := flag.String("key", "key.toml", "key file")
	encrypt := flag.Bool("encrypt", false, "encrypt the message argument")
	decrypt := flag.Bool("decrypt", false, "decrypt the hex ciphertext argument")
	sign := flag.Bool("sign", false, "sign the message argument")
	verify := flag.Bool("verify", false,
		"verify the hex signature argument of the message argument")
	hash := flag.String("hash", digest.SHA256.Name(), "signature digest")
	listHashes := flag.Bool("hashes", false, "list supported digests")
	fVerbose := flag.Bool("v", false, "verbose output")
	flag.Parse()

	verbose = *fVerbose
	args := flag.Args()

	var err error
	switch {
	case *listHashes:
		for _, d := range digest.All() {
			fmt.Printf("%s\t%d bytes\n", d.Name(), d.Size())
		}

	case *gen:
		err = generate(*keyFile, *bits, *seed)

	case *encrypt:
		err = withArgs(args, 1, func() error {
			return encryptCmd(*keyFile, args[0])
		})

	case *decrypt:
		err = withArgs(args, 1, func() error {
			return decryptCmd(*keyFile, args[0])
		})

	case *sign:
		err = withArgs(args, 1, func() error {
			return signCmd(*keyFile, *hash, args[0])
		})

	case *verify:
		err = withArgs(args, 2, func() error {
			return verifyCmd(*keyFile, *hash, args[0], args[1])
		})

	default:
		flag.Usage()
		os.Exit(1)
	}
	if err != nil {
		log.Fatal(err)
	}
}

func withArgs(args []string, n int, f func() error) error {
	if len(args) != n {
		return fmt.Errorf("expected %d arguments, got %d", n, len(args))
	}
	return f()
}

func randomSource(seed string) io.Reader {
	if len(seed) > 0 {
		return prg.New([]byte(seed))
	}
	return rand.Reader
}

func generate(file string, bits int, seed string) error {
	t := timing.NewTiming()

	key, err := rsa.GenerateKey(randomSource(seed), bits)
	if err != nil {
		return err
	}
	t.Sample("Generate", nil)

	Debugf("p=%x\nq=%x\nn=%x\n", key.P, key.Q, key.N)
	Debugf("%c=%x\n", symbols.Lambda, key.Lambda())
	Debugf("d=%x\n", key.D)

	f, err := os.Create(file)
	if err != nil {
		return err
	}
	err = key.WriteTOML(f)
	if cerr := f.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		return err
	}
	t.Sample("Write", nil)

	fmt.Printf("Generated %d bit key to '%s'\n", key.N.BitLen(), file)
	if verbose {
		t.Print(os.Stdout)
	}
	return nil
}

func loadPrivateKey(file string) (*rsa.PrivateKey, error) {
	f, err := os.Open(file)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return rsa.ReadPrivateKeyTOML(f)
}

func loadPublicKey(file string) (*rsa.PublicKey, error) {
	f, err := os.Open(file)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return rsa.ReadPublicKeyTOML(f)
}

func encryptCmd(file, msg string) error {
	pub, err := loadPublicKey(file)
	if err != nil {
		return err
	}
	c, err := rsa.EncryptPKCS1v15(rand.Reader, pub, []byte(msg))
	if err != nil {
		return err
	}
	fmt.Println(hex.EncodeToString(c))
	return nil
}

func decryptCmd(file, ciphertext string) error {
	priv, err := loadPrivateKey(file)
	if err != nil {
		return err
	}
	c, err := hex.DecodeString(strings.TrimSpace(ciphertext))
	if err != nil {
		return err
	}
	m, err := rsa.DecryptPKCS1v15(priv, c)
	if err != nil {
		return err
	}
	fmt.Printf("%s\n", m)
	return nil
}

func signCmd(file, hash, msg string) error {
	d, err := digest.ByName(hash)
	if err != nil {
		return err
	}
	priv, err := loadPrivateKey(file)
	if err != nil {
		return err
	}
	sig, err := rsa.SignPKCS1v15(priv, d, d.Sum([]byte(msg)))
	if err != nil {
		return err
	}
	Debugf("%s DigestInfo: %x\n", d.Name(), d.DigestInfo())
	fmt.Println(hex.EncodeToString(sig))
	return nil
}

func verifyCmd(file, hash, signature, msg string) error {
	d, err := digest.ByName(hash)
	if err != nil {
		return err
	}
	pub, err := loadPublicKey(file)
	if err != nil {
		return err
	}
	sig, err := hex.DecodeString(strings.TrimSpace(signature))
	if err != nil {
		return err
	}
	err = rsa.VerifyPKCS1v15(pub, d, d.Sum([]byte(msg)), sig)
	if errors.Is(err, rsa.ErrVerification) {
		fmt.Println("Signature verification failed")
		os.Exit(1)
	}
	if err != nil {
		return err
	}
	fmt.Println("Signature OK")
	return nil
}
