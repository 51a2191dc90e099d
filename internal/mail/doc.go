// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package mail delivers transactional e-mail for the service.
//
// Two transports implement [Sender]:
//   - SMTP, through gopkg.in/gomail.v2;
//   - an HTTP mail API, through the resty client in internal/utils.
//
// [NewSender] selects one according to config.Mail.Transport. Message
// bodies are rendered from the embedded HTML templates, see
// [ResetPasswordMessage].
package mail
