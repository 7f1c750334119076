// Command k4wheel is a thin CLI wrapper over the core packages
// (alphabet, partition, wheel, anchor, engine, verify, solve): spec.md
// §6 explicitly allows a CLI as long as "each subcommand is a thin
// wrapper over one core function." Every subcommand here wraps one core
// entry point (solve.Feasible, verify.Rederive, engine.Decrypt,
// engine.Encrypt), loading its inputs first (decode/encode load the
// schedule with wheel.FromDigest; solve --out also decrypts with
// engine.Decrypt to write a bundle) and renders its result or error;
// none contains cipher logic of its own.
package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/anchorcipher/k4wheel/alphabet"
	"github.com/anchorcipher/k4wheel/anchor"
	"github.com/anchorcipher/k4wheel/bundle"
	"github.com/anchorcipher/k4wheel/engine"
	"github.com/anchorcipher/k4wheel/partition"
	"github.com/anchorcipher/k4wheel/solve"
	"github.com/anchorcipher/k4wheel/verify"
	"github.com/anchorcipher/k4wheel/wheel"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "k4wheel",
		Short: "Constraint solver and verifier for periodic polyalphabetic wheel schedules",
	}
	root.AddCommand(newSolveCmd(), newVerifyCmd(), newDecodeCmd(), newEncodeCmd())
	return root
}

// shapeConfig is the JSON literal a caller supplies on disk: a shape per
// class plus an anchor list, mirroring wheel.Shape's json tags.
type shapeConfig struct {
	Shapes  [partition.NumClasses]wheel.Shape `json:"shapes"`
	Anchors []struct {
		Start int    `json:"start"`
		Text  string `json:"text"`
	} `json:"anchors"`
}

func loadShapeConfig(path string) (*shapeConfig, []anchor.Anchor, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, nil, fmt.Errorf("read shape config: %w", err)
	}
	var cfg shapeConfig
	if err := json.Unmarshal(raw, &cfg); err != nil {
		return nil, nil, fmt.Errorf("parse shape config: %w", err)
	}

	anchors := make([]anchor.Anchor, 0, len(cfg.Anchors))
	for _, a := range cfg.Anchors {
		parsed, err := anchor.NewAnchor(a.Start, a.Text)
		if err != nil {
			return nil, nil, err
		}
		anchors = append(anchors, parsed)
	}
	return &cfg, anchors, nil
}

func readLetters(path string) ([]alphabet.Letter, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	return alphabet.ParseText(string(raw))
}

func newSolveCmd() *cobra.Command {
	var shapePath, ciphertextPath, outDir string
	cmd := &cobra.Command{
		Use:   "solve",
		Short: "Force anchors through a schedule shape and report the feasibility verdict",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, anchors, err := loadShapeConfig(shapePath)
			if err != nil {
				return err
			}
			ciphertext, err := readLetters(ciphertextPath)
			if err != nil {
				return err
			}
			sch, err := solve.Feasible(ciphertext, anchors, cfg.Shapes)
			if err != nil {
				return err
			}
			digest := sch.ToDigest(false)
			fmt.Print(digest.String())
			if outDir != "" {
				if !sch.Complete() {
					return fmt.Errorf("k4wheel: --out requires a complete schedule; supply enough anchors (e.g. the tail crib) first")
				}
				plaintext, err := engine.Decrypt(sch, ciphertext)
				if err != nil {
					return err
				}
				return bundle.Write(outDir, &bundle.Bundle{Ciphertext: ciphertext, Plaintext: plaintext, Digest: digest})
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&shapePath, "shape", "", "path to a shape config JSON file")
	cmd.Flags().StringVar(&ciphertextPath, "ciphertext", "", "path to a 97-letter ciphertext file")
	cmd.Flags().StringVar(&outDir, "out", "", "optional directory to persist a bundle into (requires a complete schedule)")
	cmd.MarkFlagRequired("shape")
	cmd.MarkFlagRequired("ciphertext")
	return cmd
}

func newVerifyCmd() *cobra.Command {
	var shapePath, ciphertextPath, plaintextPath, wantSHA string
	cmd := &cobra.Command{
		Use:   "verify",
		Short: "Rederive the schedule from ciphertext+plaintext and check round-trip + SHA-256 parity",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, _, err := loadShapeConfig(shapePath)
			if err != nil {
				return err
			}
			ciphertext, err := readLetters(ciphertextPath)
			if err != nil {
				return err
			}
			plaintext, err := readLetters(plaintextPath)
			if err != nil {
				return err
			}
			result, err := verify.Rederive(cfg.Shapes, ciphertext, plaintext, wantSHA)
			if err != nil {
				return err
			}
			fmt.Printf("derivation verified: plaintext sha256=%s\n", result.PlainSHA256)
			return nil
		},
	}
	cmd.Flags().StringVar(&shapePath, "shape", "", "path to a shape config JSON file")
	cmd.Flags().StringVar(&ciphertextPath, "ciphertext", "", "path to a 97-letter ciphertext file")
	cmd.Flags().StringVar(&plaintextPath, "plaintext", "", "path to a 97-letter candidate plaintext file")
	cmd.Flags().StringVar(&wantSHA, "want-sha256", "", "optional expected plaintext sha256 to cross-check")
	cmd.MarkFlagRequired("shape")
	cmd.MarkFlagRequired("ciphertext")
	cmd.MarkFlagRequired("plaintext")
	return cmd
}

func newDecodeCmd() *cobra.Command {
	var digestPath, ciphertextPath string
	cmd := &cobra.Command{
		Use:   "decode",
		Short: "Decrypt a ciphertext with a complete schedule loaded from a proof digest",
		RunE: func(cmd *cobra.Command, args []string) error {
			b, err := bundle.Read(digestPath)
			if err != nil {
				return err
			}
			sch, err := wheel.FromDigest(b.Digest)
			if err != nil {
				return err
			}
			ciphertext, err := readLetters(ciphertextPath)
			if err != nil {
				return err
			}
			plaintext, err := engine.Decrypt(sch, ciphertext)
			if err != nil {
				return err
			}
			fmt.Println(alphabet.Text(plaintext))
			return nil
		},
	}
	cmd.Flags().StringVar(&digestPath, "bundle", "", "path to a bundle directory containing proof_digest_enhanced.json")
	cmd.Flags().StringVar(&ciphertextPath, "ciphertext", "", "path to a 97-letter ciphertext file")
	cmd.MarkFlagRequired("bundle")
	cmd.MarkFlagRequired("ciphertext")
	return cmd
}

func newEncodeCmd() *cobra.Command {
	var digestPath, plaintextPath string
	cmd := &cobra.Command{
		Use:   "encode",
		Short: "Encrypt a plaintext with a complete schedule loaded from a proof digest",
		RunE: func(cmd *cobra.Command, args []string) error {
			b, err := bundle.Read(digestPath)
			if err != nil {
				return err
			}
			sch, err := wheel.FromDigest(b.Digest)
			if err != nil {
				return err
			}
			plaintext, err := readLetters(plaintextPath)
			if err != nil {
				return err
			}
			ciphertext, err := engine.Encrypt(sch, plaintext)
			if err != nil {
				return err
			}
			fmt.Println(alphabet.Text(ciphertext))
			return nil
		},
	}
	cmd.Flags().StringVar(&digestPath, "bundle", "", "path to a bundle directory containing proof_digest_enhanced.json")
	cmd.Flags().StringVar(&plaintextPath, "plaintext", "", "path to a 97-letter plaintext file")
	cmd.MarkFlagRequired("bundle")
	cmd.MarkFlagRequired("plaintext")
	return cmd
}
