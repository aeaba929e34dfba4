package catalog

// awsRules covers destructive and credential-adjacent AWS CLI operations.
func awsRules() []ruleDef {
	return []ruleDef{
		{
			id:          "aws:s3-rb-force",
			group:       "aws",
			pattern:     `^\s*aws\s+s3\s+rb\s+.*--force\b`,
			severity:    Critical,
			description: "deletes an S3 bucket and all objects inside it",
			hint:        HintBlock,
		},
		{
			id:          "aws:s3-rm-recursive",
			group:       "aws",
			pattern:     `^\s*aws\s+s3\s+rm\s+.*--recursive\b`,
			severity:    High,
			description: "recursively deletes objects from an S3 bucket or prefix",
			hint:        HintWord,
		},
		{
			id:          "aws:ec2-terminate-instances",
			group:       "aws",
			pattern:     `^\s*aws\s+ec2\s+terminate-instances\b`,
			severity:    High,
			description: "permanently terminates one or more EC2 instances",
			hint:        HintWord,
		},
		{
			id:          "aws:rds-delete-db-instance",
			group:       "aws",
			pattern:     `^\s*aws\s+rds\s+delete-db-instance\b`,
			severity:    Critical,
			description: "deletes an RDS database instance",
			hint:        HintBlock,
		},
		{
			id:          "aws:iam-delete-user",
			group:       "aws",
			pattern:     `^\s*aws\s+iam\s+delete-user\b`,
			severity:    High,
			description: "deletes an IAM user, revoking its access",
			hint:        HintWord,
		},
		{
			id:          "aws:credentials-file-read",
			group:       "aws",
			pattern:     `\b(cat|less|more|cp|scp)\s+.*(?P<path>[~$][\w./\-]*\.aws[\w./\-]*)`,
			severity:    High,
			description: "reads or copies AWS credential material",
			hint:        HintWord,
			predicates:  []Predicate{protectedPathPredicate("path", []string{"~/.aws/**"})},
		},
		{
			id:          "aws:dynamodb-delete-table",
			group:       "aws",
			pattern:     `^\s*aws\s+dynamodb\s+delete-table\b`,
			severity:    High,
			description: "deletes a DynamoDB table and all its data",
			hint:        HintWord,
		},
	}
}
