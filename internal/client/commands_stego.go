// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/MKhiriev/go-stego-channel/models"
)

func (a *App) hideCmd() *cobra.Command {
	var (
		secret      secretFlags
		in, out     string
		kind        string
		message     string
		messageFile string
		bits        int
	)

	cmd := &cobra.Command{
		Use:   "hide --in <carrier> --out <file>",
		Short: "Encrypt a message and embed it into a carrier",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			data, err := a.readInput(in)
			if err != nil {
				return err
			}
			msg, err := a.message(message, messageFile)
			if err != nil {
				return err
			}
			s, err := a.resolveSecret(secret)
			if err != nil {
				return err
			}

			req := models.HideRequest{
				Kind:        carrierKind(kind, data),
				Carrier:     data,
				Message:     msg,
				Password:    s.password,
				BitsPerUnit: bits,
				Secret:      s.secret,
			}

			var resp models.HideResponse
			if secret.remote {
				resp, err = a.adapter.Hide(cmd.Context(), req, s.token)
			} else {
				resp, err = a.services.StegoService.Hide(cmd.Context(), req)
			}
			if err != nil {
				return err
			}

			if err = os.WriteFile(out, resp.Artifact, 0o644); err != nil {
				return err
			}

			w := cmd.OutOrStdout()
			fmt.Fprintf(w, "wrote %s (%s)\n", out, resp.Format)
			fmt.Fprintf(w, "fingerprint: %s\n", resp.Fingerprint)
			fmt.Fprintf(w, "used %d of %d bits at %d bit(s) per unit\n",
				resp.Plan.RequiredBits, resp.Plan.AvailableBits, resp.Plan.BitsPerUnit)
			return nil
		},
	}

	secret.register(cmd)
	cmd.Flags().StringVarP(&in, "in", "i", "", `cover file, "-" for stdin`)
	cmd.Flags().StringVarP(&out, "out", "o", "", "output file")
	cmd.Flags().StringVar(&kind, "kind", "", "text, image or audio (sniffed when omitted)")
	cmd.Flags().StringVarP(&message, "message", "m", "", "message to hide")
	cmd.Flags().StringVar(&messageFile, "message-file", "", "read the message from a file")
	cmd.Flags().IntVar(&bits, "bits", 0, "bits per unit, 0 for the default")
	_ = cmd.MarkFlagRequired("in")
	_ = cmd.MarkFlagRequired("out")
	return cmd
}

func (a *App) revealCmd() *cobra.Command {
	var (
		secret      secretFlags
		in          string
		kind        string
		bits        int
		fingerprint string
		copyOut     bool
	)

	cmd := &cobra.Command{
		Use:   "reveal --in <file>",
		Short: "Extract and decrypt a message from a carrier",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			data, err := a.readInput(in)
			if err != nil {
				return err
			}
			s, err := a.resolveSecret(secret)
			if err != nil {
				return err
			}

			req := models.RevealRequest{
				Kind:                carrierKind(kind, data),
				Carrier:             data,
				Password:            s.password,
				BitsPerUnit:         bits,
				ExpectedFingerprint: fingerprint,
				Secret:              s.secret,
			}

			var resp models.RevealResponse
			if secret.remote {
				resp, err = a.adapter.Reveal(cmd.Context(), req, s.token)
			} else {
				resp, err = a.services.StegoService.Reveal(cmd.Context(), req)
			}
			if err != nil {
				return err
			}

			w := cmd.OutOrStdout()
			if resp.FingerprintMatch != nil && !*resp.FingerprintMatch {
				fmt.Fprintln(cmd.ErrOrStderr(), "warning: fingerprint does not match")
			}
			if copyOut {
				if err = a.clipboard.WriteAll(resp.Message); err != nil {
					return fmt.Errorf("error copying to clipboard: %w", err)
				}
				fmt.Fprintln(w, "message copied to clipboard")
				return nil
			}
			fmt.Fprintln(w, resp.Message)
			return nil
		},
	}

	secret.register(cmd)
	cmd.Flags().StringVarP(&in, "in", "i", "", `carrier file, "-" for stdin`)
	cmd.Flags().StringVar(&kind, "kind", "", "text, image or audio (sniffed when omitted)")
	cmd.Flags().IntVar(&bits, "bits", 0, "bits per unit used when hiding")
	cmd.Flags().StringVar(&fingerprint, "fingerprint", "", "expected artifact fingerprint")
	cmd.Flags().BoolVar(&copyOut, "copy", false, "copy the message to the clipboard instead of printing it")
	_ = cmd.MarkFlagRequired("in")
	return cmd
}

func (a *App) capacityCmd() *cobra.Command {
	var (
		in     string
		kind   string
		bits   int
		length int
	)

	cmd := &cobra.Command{
		Use:   "capacity --in <carrier>",
		Short: "Report how large a message a carrier can hold",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			data, err := a.readInput(in)
			if err != nil {
				return err
			}

			resp, err := a.services.StegoService.Capacity(cmd.Context(), models.CapacityRequest{
				Kind:          carrierKind(kind, data),
				Carrier:       data,
				MessageLength: length,
				BitsPerUnit:   bits,
			})
			if err != nil {
				return err
			}

			w := cmd.OutOrStdout()
			fmt.Fprintf(w, "kind: %s\n", resp.Plan.Kind)
			fmt.Fprintf(w, "bits per unit: %d\n", resp.Plan.BitsPerUnit)
			fmt.Fprintf(w, "available bits: %d\n", resp.Plan.AvailableBits)
			fmt.Fprintf(w, "max message length: %d bytes\n", resp.MaxMessageLength)
			if length > 0 {
				fmt.Fprintf(w, "fits %d bytes: %t\n", length, resp.Fits)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&in, "in", "i", "", `carrier file, "-" for stdin`)
	cmd.Flags().StringVar(&kind, "kind", "", "text, image or audio (sniffed when omitted)")
	cmd.Flags().IntVar(&bits, "bits", 0, "bits per unit, 0 for the default")
	cmd.Flags().IntVarP(&length, "length", "l", 0, "message length in bytes to check")
	_ = cmd.MarkFlagRequired("in")
	return cmd
}

func (a *App) analyzeCmd() *cobra.Command {
	var in, kind string

	cmd := &cobra.Command{
		Use:   "analyze --in <file>",
		Short: "Estimate how detectable hidden data in a file is",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			data, err := a.readInput(in)
			if err != nil {
				return err
			}

			report, err := a.services.StegoService.Analyze(cmd.Context(), models.AnalyzeRequest{
				Kind:    carrierKind(kind, data),
				Carrier: data,
			})
			if err != nil {
				return err
			}

			w := cmd.OutOrStdout()
			fmt.Fprintf(w, "detection probability: %.2f\n", report.DetectionProbability)
			fmt.Fprintf(w, "security: %d/5 (%s)\n", report.SecurityScore, report.Level)
			if len(report.Recommendations) > 0 {
				fmt.Fprintf(w, "recommendations:\n  - %s\n", strings.Join(report.Recommendations, "\n  - "))
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&in, "in", "i", "", `file to analyze, "-" for stdin`)
	cmd.Flags().StringVar(&kind, "kind", "", "text, image or audio (sniffed when omitted)")
	_ = cmd.MarkFlagRequired("in")
	return cmd
}

// message returns the message flag, the message file, or stdin.
func (a *App) message(flag, file string) (string, error) {
	switch {
	case flag != "" && file != "":
		return "", ErrMessageAndFile
	case flag != "":
		return flag, nil
	case file != "":
		raw, err := os.ReadFile(file)
		return string(raw), err
	default:
		raw, err := a.readInput("-")
		return strings.TrimRight(string(raw), "\r\n"), err
	}
}
