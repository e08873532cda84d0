package taxonomy

// Category is a policy area in the helpdesk taxonomy. Keywords trigger the
// category via case-insensitive substring matching; Questions is the pool
// follow-up suggestions are drawn from. Keyword sets are disjoint across
// categories.
type Category struct {
	Label     string
	Keywords  []string
	Questions []string
}

// DefaultTaxonomy returns the fixed twelve-category helpdesk taxonomy.
// The returned slice is fresh on every call so callers can treat it as
// immutable configuration.
func DefaultTaxonomy() []Category {
	return []Category{
		{
			Label:    "Accounts & Onboarding",
			Keywords: []string{"onboarding", "new hire", "account creation", "offboarding", "account deactivation"},
			Questions: []string{
				"How do I request an account for a new team member?",
				"What is the onboarding checklist for IT access?",
				"How are accounts deactivated when someone leaves?",
			},
		},
		{
			Label:    "Data Backup & Recovery",
			Keywords: []string{"backup", "restore", "file recovery", "recovery point"},
			Questions: []string{
				"How often are my files backed up?",
				"How do I restore a deleted file?",
				"How long are backups retained?",
			},
		},
		{
			Label:    "Email & Collaboration",
			Keywords: []string{"email", "outlook", "mailbox", "calendar", "distribution list", "shared drive"},
			Questions: []string{
				"How do I set up my email on a new device?",
				"How do I request a shared mailbox?",
				"What is the mailbox size limit?",
			},
		},
		{
			Label:    "Hardware & Devices",
			Keywords: []string{"laptop", "desktop", "monitor", "keyboard", "docking station", "hardware"},
			Questions: []string{
				"How do I request a replacement laptop?",
				"What hardware is included in the standard setup?",
				"Who do I contact for a broken monitor?",
			},
		},
		{
			Label:    "Identity & Access Management",
			Keywords: []string{"password", "login", "mfa", "multi-factor", "single sign-on", "sso", "access request", "credential"},
			Questions: []string{
				"How do I reset my password?",
				"How do I set up multi-factor authentication?",
				"How do I request access to a system?",
			},
		},
		{
			Label:    "Incident & Service Requests",
			Keywords: []string{"ticket", "incident", "service request", "helpdesk portal", "escalation", "sla"},
			Questions: []string{
				"How do I raise a support ticket?",
				"What are the response time targets for tickets?",
				"How do I escalate an urgent issue?",
			},
		},
		{
			Label:    "Infrastructure & Servers",
			Keywords: []string{"server", "data center", "virtual machine", "hosting", "dns"},
			Questions: []string{
				"How do I request a new virtual machine?",
				"Who manages DNS changes?",
				"What is the maintenance window for servers?",
			},
		},
		{
			Label:    "Mobile & BYOD",
			Keywords: []string{"mobile", "byod", "smartphone", "tablet", "mdm", "personal device"},
			Questions: []string{
				"Can I use my personal phone for work email?",
				"How do I enroll my device in mobile management?",
				"What happens to company data if I lose my phone?",
			},
		},
		{
			Label:    "Network & Remote Access",
			Keywords: []string{"vpn", "wifi", "wi-fi", "network", "remote access", "proxy", "ethernet"},
			Questions: []string{
				"How do I connect to the VPN?",
				"What should I do if the VPN keeps disconnecting?",
				"How do I get access to the office Wi-Fi?",
			},
		},
		{
			Label:    "Printing & Peripherals",
			Keywords: []string{"printer", "printing", "scanner", "toner", "print queue"},
			Questions: []string{
				"How do I add a network printer?",
				"Who do I contact when the printer is out of toner?",
				"How do I scan a document to email?",
			},
		},
		{
			Label:    "Security & Compliance",
			Keywords: []string{"phishing", "malware", "antivirus", "security incident", "encryption", "compliance"},
			Questions: []string{
				"How do I report a phishing email?",
				"What should I do if I suspect malware on my machine?",
				"Is my laptop disk encrypted?",
			},
		},
		{
			Label:    "Software & Licensing",
			Keywords: []string{"software", "license", "installation", "application", "patch", "update"},
			Questions: []string{
				"How do I request new software?",
				"How are software licenses assigned?",
				"When are security patches applied?",
			},
		},
	}
}

// GenericFollowUps returns the fixed fallback follow-up set used when no
// category matches the retrieved context. Always exactly three items.
func GenericFollowUps() []string {
	return []string{
		"How do I raise a support ticket?",
		"What are the IT helpdesk support hours?",
		"Where can I find the IT knowledge base?",
	}
}
