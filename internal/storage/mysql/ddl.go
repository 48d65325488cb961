package mysql

import (
	"context"

	"salesdw/internal/storage"
)

// Warehouse DDL, MySQL dialect. InnoDB is required for transactional
// replace loads and for the foreign keys on the fact table.
var ddl = []string{
	"CREATE TABLE IF NOT EXISTS `DimDate` (" +
		"`DateKey` INT PRIMARY KEY," +
		"`OrderDate` DATE NOT NULL," +
		"`Year` INT NOT NULL," +
		"`Month` INT NOT NULL," +
		"`Day` INT NOT NULL" +
		") ENGINE=InnoDB",
	"CREATE TABLE IF NOT EXISTS `DimProduct` (" +
		"`ProductID` VARCHAR(64) PRIMARY KEY," +
		"`ProductName` VARCHAR(255) NOT NULL," +
		"`Category` VARCHAR(255) NOT NULL," +
		"`Cost` DOUBLE NOT NULL" +
		") ENGINE=InnoDB",
	"CREATE TABLE IF NOT EXISTS `FactSales` (" +
		"`OrderID` VARCHAR(64) NOT NULL," +
		"`CustomerID` VARCHAR(64) NOT NULL," +
		"`ProductID` VARCHAR(64) NOT NULL," +
		"`DateKey` INT NOT NULL," +
		"`Quantity` DOUBLE NOT NULL," +
		"`Price` DOUBLE NOT NULL," +
		"`Revenue` DOUBLE NOT NULL," +
		"FOREIGN KEY (`ProductID`) REFERENCES `DimProduct` (`ProductID`)," +
		"FOREIGN KEY (`DateKey`) REFERENCES `DimDate` (`DateKey`)" +
		") ENGINE=InnoDB",
}

// EnsureWarehouse creates the three tables if missing.
func EnsureWarehouse(ctx context.Context, repo storage.Repository) error {
	for _, stmt := range ddl {
		if err := repo.Exec(ctx, stmt); err != nil {
			return err
		}
	}
	return nil
}
